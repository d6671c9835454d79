package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "lanka-finance/http"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		ctx := cmd.Context()
		estimator, release, err := newEstimator(ctx, cfg)
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		defer release()

		rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitWindow.Duration)

		handler := httpLayer.NewHandler(estimator, cfg.Loan)
		router := httpLayer.NewRouter(handler, rateLimiter, cfg.Server.AllowedOrigins)

		server := &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout.Duration,
			WriteTimeout: cfg.Server.WriteTimeout.Duration,
			IdleTimeout:  cfg.Server.IdleTimeout.Duration,
		}

		serverErr := make(chan error, 1)
		go func() {
			log.WithField("addr", server.Addr).Info("api listening")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			return fmt.Errorf("starting server: %w", err)
		case <-quit:
			log.Info("shutting down server")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}

		log.Info("server exited")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port override")
	rootCmd.AddCommand(serveCmd)
}
