package domain

type LoanInput struct {
	Principal    float64
	InterestRate float64 // annual, percent
	TermYears    int
}

type AmortizationResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}
