package service

import (
	"math"

	"lanka-finance/domain"
)

// annuityPayment is the fixed installment that retires principal over n
// periods at periodic rate r. A zero rate degenerates to straight division.
func annuityPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(n)))
}

// termComputable reports whether years is a positive term within the
// configured maximum. A zero maximum leaves the term unbounded.
func (c *Calculator) termComputable(years int) bool {
	if years <= 0 {
		return false
	}
	return c.settings.MaxTermYears <= 0 || years <= c.settings.MaxTermYears
}

// Amortize computes the fixed monthly installment and loan totals. Non-positive
// principal or rate, and a term outside (0, MaxTermYears], yield the zero result.
func (c *Calculator) Amortize(input domain.LoanInput) domain.AmortizationResult {
	if !(input.Principal > 0) || !(input.InterestRate > 0) || !c.termComputable(input.TermYears) {
		return domain.AmortizationResult{}
	}

	monthlyRate := input.InterestRate / 100 / monthsPerYear
	n := input.TermYears * monthsPerYear

	payment := annuityPayment(input.Principal, monthlyRate, n)
	total := payment * float64(n)

	return domain.AmortizationResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - input.Principal,
	}
}

// Schedule splits every installment into interest and principal. The last
// entry absorbs rounding drift so the balance closes at zero.
func (c *Calculator) Schedule(input domain.LoanInput) []domain.ScheduleEntry {
	result := c.Amortize(input)
	if result.MonthlyPayment == 0 {
		return nil
	}

	monthlyRate := input.InterestRate / 100 / monthsPerYear
	n := input.TermYears * monthsPerYear

	entries := make([]domain.ScheduleEntry, 0, n)
	balance := input.Principal
	for month := 1; month <= n; month++ {
		interest := balance * monthlyRate
		principal := result.MonthlyPayment - interest
		payment := result.MonthlyPayment
		if month == n {
			principal = balance
			payment = principal + interest
		}
		balance -= principal

		entries = append(entries, domain.ScheduleEntry{
			Month:     month,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   math.Max(0, balance),
		})
	}

	return entries
}
