package domain

import "math"

// TaxBracket covers the next slice of monthly taxable income up to Limit.
type TaxBracket struct {
	Limit float64
	Rate  float64
}

// Unbounded reports whether the bracket absorbs everything that remains.
func (b TaxBracket) Unbounded() bool {
	return math.IsInf(b.Limit, 1)
}

type SalaryInput struct {
	Gross float64
	Basic float64 // only read when contributions are computed off basic salary
}

type SalaryBreakdown struct {
	Gross                 float64
	ContributionDeduction float64
	Tax                   float64
	FixedCharge           float64
	TotalDeductions       float64
	NetSalary             float64 // negative when deductions exceed gross
}
