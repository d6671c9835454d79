package service

import (
	"errors"

	"lanka-finance/domain"
)

var (
	ErrSalaryTooHigh         = errors.New("required salary too high to estimate")
	ErrCombinedSalaryTooHigh = errors.New("required combined salary too high to estimate")
)

// userMessages is the text shown to applicants for each estimation failure.
var userMessages = map[error]string{
	ErrSalaryTooHigh:         "The required salary is likely too high to estimate. Please check your inputs.",
	ErrCombinedSalaryTooHigh: "The required combined salary is likely too high to estimate. Please check your inputs.",
}

// UserMessage returns the applicant-facing text for an estimation failure.
func UserMessage(err error) string {
	for target, msg := range userMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// Estimate works back from a house cost to the salaries that can carry the
// loan. Inputs that cannot produce a loan give the zero result.
func (c *Calculator) Estimate(input domain.EstimationInput) domain.EstimationResult {
	if !(input.HouseCost > 0) || !(input.InterestRate > 0) || !c.termComputable(input.TermYears) {
		return domain.EstimationResult{}
	}

	loanAmount := input.HouseCost - input.DownPayment
	if loanAmount <= 0 {
		return domain.EstimationResult{}
	}

	payment := c.Amortize(domain.LoanInput{
		Principal:    loanAmount,
		InterestRate: input.InterestRate,
		TermYears:    input.TermYears,
	}).MonthlyPayment

	result := domain.EstimationResult{
		LoanAmount:           loanAmount,
		MonthlyPayment:       payment,
		SingleRequiredSalary: c.RequiredSalary(payment),
	}
	if payment > 0 {
		result.JointCombinations = c.DefaultCombinations(payment)
	}

	if err := estimateError(input.ApplicantType, result); err != nil {
		result.Error = UserMessage(err)
	}
	return result
}

func estimateError(applicant domain.ApplicantType, result domain.EstimationResult) error {
	if result.MonthlyPayment <= 0 {
		return nil
	}
	switch applicant {
	case domain.ApplicantJoint:
		if len(result.JointCombinations) == 0 {
			return ErrCombinedSalaryTooHigh
		}
	default:
		if result.SingleRequiredSalary == 0 {
			return ErrSalaryTooHigh
		}
	}
	return nil
}
