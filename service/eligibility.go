package service

import (
	"lanka-finance/domain"

	"github.com/samber/lo"
)

// Eligibility is the largest installment a lender allows against salary:
// the loan portion of the salary less contribution and tax. Fixed charges do
// not count against it.
func (c *Calculator) Eligibility(salary float64) float64 {
	return c.Affordability(salary).Installment
}

func (c *Calculator) Affordability(salary float64) domain.LoanAffordability {
	if salary == 0 {
		return domain.LoanAffordability{}
	}

	contribution := salary * c.settings.ContributionRate
	tax := c.Tax(salary)
	deductions := contribution + tax
	portion := salary * c.settings.PortionRate
	installment := portion - deductions
	// NaN fails this comparison too.
	if !(installment > 0) {
		installment = 0
	}

	return domain.LoanAffordability{
		Salary:       salary,
		LoanPortion:  portion,
		Contribution: contribution,
		Tax:          tax,
		Deductions:   deductions,
		Installment:  installment,
	}
}

// JointEligibility sums the allowed installments of two applicants. The second
// applicant is ignored unless joint is set.
func (c *Calculator) JointEligibility(salaryA, salaryB float64, joint bool) domain.JointEligibility {
	if !joint {
		salaryB = 0
	}

	applicants := []domain.LoanAffordability{c.Affordability(salaryA), c.Affordability(salaryB)}
	total := lo.SumBy(applicants, func(a domain.LoanAffordability) float64 {
		return a.Installment
	})

	return domain.JointEligibility{
		ApplicantA:          applicants[0],
		ApplicantB:          applicants[1],
		TotalMaxInstallment: total,
	}
}
