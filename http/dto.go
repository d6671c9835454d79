package http

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"lanka-finance/domain"
	"lanka-finance/format"
)

// Input is a free-text field as typed by the user. JSON numbers are accepted
// too and read the same way.
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Input(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*in = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Exponent forms and signs would not survive the free-text parser, so
	// numbers are normalised to plain non-negative decimals here.
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsInf(v, 0) || !(v > 0) {
		v = 0
	}
	*in = Input(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

func (in Input) Amount() float64 { return format.ParseAmount(string(in)) }
func (in Input) Years() int      { return format.ParseYears(string(in)) }

// amountOr reads in, falling back to def when the field was omitted.
func amountOr(in *Input, def float64) float64 {
	if in == nil {
		return def
	}
	return in.Amount()
}

func yearsOr(in *Input, def int) int {
	if in == nil {
		return def
	}
	return in.Years()
}

// Money pairs a value with its display string.
type Money struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

func money(v float64) Money {
	return Money{Value: v, Display: format.Currency(v)}
}

type TaxRequest struct {
	Salary Input `json:"salary"`
}

type TaxResponse struct {
	Salary Money `json:"salary"`
	Tax    Money `json:"tax"`
}

type SalaryRequest struct {
	Gross Input `json:"gross"`
	Basic Input `json:"basic"`
}

type SalaryResponse struct {
	Gross           Money `json:"gross"`
	Contribution    Money `json:"contribution"`
	Tax             Money `json:"tax"`
	FixedCharge     Money `json:"fixed_charge"`
	TotalDeductions Money `json:"total_deductions"`
	NetSalary       Money `json:"net_salary"`
}

func newSalaryResponse(b domain.SalaryBreakdown) SalaryResponse {
	return SalaryResponse{
		Gross:           money(b.Gross),
		Contribution:    money(b.ContributionDeduction),
		Tax:             money(b.Tax),
		FixedCharge:     money(b.FixedCharge),
		TotalDeductions: money(b.TotalDeductions),
		NetSalary:       money(b.NetSalary),
	}
}

type LoanRequest struct {
	Amount Input  `json:"amount"`
	Rate   *Input `json:"rate"`
	Years  *Input `json:"years"`
}

type LoanResponse struct {
	MonthlyPayment Money `json:"monthly_payment"`
	TotalPayment   Money `json:"total_payment"`
	TotalInterest  Money `json:"total_interest"`
}

func newLoanResponse(r domain.AmortizationResult) LoanResponse {
	return LoanResponse{
		MonthlyPayment: money(r.MonthlyPayment),
		TotalPayment:   money(r.TotalPayment),
		TotalInterest:  money(r.TotalInterest),
	}
}

type ScheduleResponse struct {
	Summary LoanResponse           `json:"summary"`
	Entries []domain.ScheduleEntry `json:"entries"`
}

type EligibilityRequest struct {
	Type    string `json:"type"` // single or joint
	SalaryA Input  `json:"salary_a"`
	SalaryB Input  `json:"salary_b"`
}

type ApplicantResponse struct {
	Salary          Money `json:"salary"`
	LoanPortion     Money `json:"loan_portion"`
	Contribution    Money `json:"contribution"`
	Tax             Money `json:"tax"`
	TotalDeductions Money `json:"total_deductions"`
	Installment     Money `json:"installment"`
}

func newApplicantResponse(a domain.LoanAffordability) ApplicantResponse {
	return ApplicantResponse{
		Salary:          money(a.Salary),
		LoanPortion:     money(a.LoanPortion),
		Contribution:    money(a.Contribution),
		Tax:             money(a.Tax),
		TotalDeductions: money(a.Deductions),
		Installment:     money(a.Installment),
	}
}

type EligibilityResponse struct {
	ApplicantA          ApplicantResponse `json:"applicant_a"`
	ApplicantB          ApplicantResponse `json:"applicant_b"`
	TotalMaxInstallment Money             `json:"total_max_installment"`
}

type EstimateRequest struct {
	Type        string `json:"type"` // single or joint
	HouseCost   Input  `json:"house_cost"`
	DownPayment Input  `json:"down_payment"`
	Rate        *Input `json:"rate"`
	Years       *Input `json:"years"`
}

type CombinationResponse struct {
	SalaryA Money `json:"salary_a"`
	SalaryB Money `json:"salary_b"`
	Total   Money `json:"total"`
}

type EstimateResponse struct {
	LoanAmount           Money                 `json:"loan_amount"`
	MonthlyPayment       Money                 `json:"monthly_payment"`
	SingleRequiredSalary Money                 `json:"single_required_salary"`
	JointCombinations    []CombinationResponse `json:"joint_combinations"`
	Error                string                `json:"error,omitempty"`
}

func newEstimateResponse(r domain.EstimationResult) EstimateResponse {
	combos := make([]CombinationResponse, len(r.JointCombinations))
	for i, c := range r.JointCombinations {
		combos[i] = CombinationResponse{
			SalaryA: money(c.SalaryA),
			SalaryB: money(c.SalaryB),
			Total:   money(c.Total),
		}
	}
	return EstimateResponse{
		LoanAmount:           money(r.LoanAmount),
		MonthlyPayment:       money(r.MonthlyPayment),
		SingleRequiredSalary: money(r.SingleRequiredSalary),
		JointCombinations:    combos,
		Error:                r.Error,
	}
}
