package service

import "lanka-finance/domain"

// Breakdown derives the deductions and net salary for one payslip. When every
// input is zero the result is all zeros, so the fixed charge alone is never
// reported.
func (c *Calculator) Breakdown(input domain.SalaryInput) domain.SalaryBreakdown {
	if input.Gross == 0 && (c.settings.ContributionBasis != BasisBasic || input.Basic == 0) {
		return domain.SalaryBreakdown{}
	}

	basis := input.Gross
	if c.settings.ContributionBasis == BasisBasic {
		basis = input.Basic
	}

	contribution := basis * c.settings.ContributionRate
	tax := c.Tax(input.Gross)
	fixed := c.settings.FixedCharge
	total := contribution + tax + fixed

	return domain.SalaryBreakdown{
		Gross:                 input.Gross,
		ContributionDeduction: contribution,
		Tax:                   tax,
		FixedCharge:           fixed,
		TotalDeductions:       total,
		NetSalary:             input.Gross - total,
	}
}
