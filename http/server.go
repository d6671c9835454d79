package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the calculator endpoints under /api.
func NewRouter(h *Handler, limiter *RateLimiter, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logrus.StandardLogger(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", h.Settings)

		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(limiter))
			r.Use(middleware.AllowContentType("application/json"))

			r.Post("/tax", h.CalculateTax)
			r.Post("/salary", h.CalculateSalary)
			r.Post("/eligibility", h.CalculateEligibility)
			r.Post("/required-salary", h.RequiredSalary)
			r.Post("/estimate", h.Estimate)

			r.Route("/loan", func(r chi.Router) {
				r.Post("/calculate", h.CalculateLoan)
				r.Post("/schedule", h.LoanSchedule)
			})
		})
	})

	return r
}
