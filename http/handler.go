package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"lanka-finance/config"
	"lanka-finance/domain"
	"lanka-finance/service"
)

var log = logrus.WithField("module", "http")

// Handler serves the calculator tools. Every request carries its own inputs;
// nothing is shared between calls beyond the memoization cache.
type Handler struct {
	estimator *service.EstimatorService
	calc      *service.Calculator
	loan      config.LoanConfig
}

func NewHandler(estimator *service.EstimatorService, loan config.LoanConfig) *Handler {
	return &Handler{
		estimator: estimator,
		calc:      estimator.Calculator(),
		loan:      loan,
	}
}

func (h *Handler) CalculateTax(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if !decode(w, r, &req) {
		return
	}

	salary := req.Salary.Amount()
	writeJSON(w, http.StatusOK, TaxResponse{
		Salary: money(salary),
		Tax:    money(h.calc.Tax(salary)),
	})
}

func (h *Handler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	var req SalaryRequest
	if !decode(w, r, &req) {
		return
	}

	breakdown := h.calc.Breakdown(domain.SalaryInput{
		Gross: req.Gross.Amount(),
		Basic: req.Basic.Amount(),
	})
	writeJSON(w, http.StatusOK, newSalaryResponse(breakdown))
}

func (h *Handler) loanInput(req LoanRequest) domain.LoanInput {
	return domain.LoanInput{
		Principal:    req.Amount.Amount(),
		InterestRate: amountOr(req.Rate, h.loan.InterestRate),
		TermYears:    yearsOr(req.Years, h.loan.PaymentTermYears),
	}
}

func (h *Handler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !decode(w, r, &req) {
		return
	}

	result := h.calc.Amortize(h.loanInput(req))
	writeJSON(w, http.StatusOK, newLoanResponse(result))
}

func (h *Handler) LoanSchedule(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !decode(w, r, &req) {
		return
	}

	input := h.loanInput(req)
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Summary: newLoanResponse(h.calc.Amortize(input)),
		Entries: h.calc.Schedule(input),
	})
}

func (h *Handler) CalculateEligibility(w http.ResponseWriter, r *http.Request) {
	var req EligibilityRequest
	if !decode(w, r, &req) {
		return
	}

	joint := domain.ApplicantType(req.Type) == domain.ApplicantJoint
	result := h.calc.JointEligibility(req.SalaryA.Amount(), req.SalaryB.Amount(), joint)

	writeJSON(w, http.StatusOK, EligibilityResponse{
		ApplicantA:          newApplicantResponse(result.ApplicantA),
		ApplicantB:          newApplicantResponse(result.ApplicantB),
		TotalMaxInstallment: money(result.TotalMaxInstallment),
	})
}

type RequiredSalaryRequest struct {
	Installment Input `json:"installment"`
}

type RequiredSalaryResponse struct {
	Installment Money  `json:"installment"`
	Salary      Money  `json:"salary"`
	Error       string `json:"error,omitempty"`
}

func (h *Handler) RequiredSalary(w http.ResponseWriter, r *http.Request) {
	var req RequiredSalaryRequest
	if !decode(w, r, &req) {
		return
	}

	installment := req.Installment.Amount()
	salary := h.estimator.RequiredSalary(r.Context(), installment)

	resp := RequiredSalaryResponse{
		Installment: money(installment),
		Salary:      money(salary),
	}
	if installment > 0 && salary == 0 {
		resp.Error = service.UserMessage(service.ErrSalaryTooHigh)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if !decode(w, r, &req) {
		return
	}

	applicant := domain.ApplicantSingle
	if domain.ApplicantType(req.Type) == domain.ApplicantJoint {
		applicant = domain.ApplicantJoint
	}

	result := h.estimator.Estimate(r.Context(), domain.EstimationInput{
		HouseCost:     req.HouseCost.Amount(),
		DownPayment:   req.DownPayment.Amount(),
		InterestRate:  amountOr(req.Rate, h.loan.InterestRate),
		TermYears:     yearsOr(req.Years, h.loan.EstimatorTermYears),
		ApplicantType: applicant,
	})
	writeJSON(w, http.StatusOK, newEstimateResponse(result))
}

type BracketResponse struct {
	MonthlyLimit *float64 `json:"monthly_limit"` // null when unbounded
	Rate         float64  `json:"rate"`
}

type SettingsResponse struct {
	TaxRelief         float64           `json:"tax_relief"`
	Brackets          []BracketResponse `json:"brackets"`
	ContributionRate  float64           `json:"contribution_rate"`
	ContributionBasis string            `json:"contribution_basis"`
	FixedCharge       float64           `json:"fixed_charge"`
	PortionRate       float64           `json:"portion_rate"`
	MaxTermYears      int               `json:"max_term_years"`
	SearchStep        float64           `json:"search_step"`
	SearchCeiling     float64           `json:"search_ceiling"`
	Splits            int               `json:"splits"`
	Loan              config.LoanConfig `json:"loan"`
}

// Settings exposes the configuration the tools calculate with.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	s := h.calc.Settings()

	var brackets []BracketResponse
	for _, b := range h.calc.Brackets() {
		resp := BracketResponse{Rate: b.Rate}
		if !b.Unbounded() {
			limit := b.Limit
			resp.MonthlyLimit = &limit
		}
		brackets = append(brackets, resp)
	}

	writeJSON(w, http.StatusOK, SettingsResponse{
		TaxRelief:         s.TaxRelief,
		Brackets:          brackets,
		ContributionRate:  s.ContributionRate,
		ContributionBasis: string(s.ContributionBasis),
		FixedCharge:       s.FixedCharge,
		PortionRate:       s.PortionRate,
		MaxTermYears:      s.MaxTermYears,
		SearchStep:        s.SearchStep,
		SearchCeiling:     s.SearchCeiling,
		Splits:            s.Splits,
		Loan:              h.loan,
	})
}
