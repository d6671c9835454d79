package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanka-finance/domain"
)

func TestAmortize_WithInterest(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	result := calc.Amortize(domain.LoanInput{
		Principal:    10_000_000,
		InterestRate: 12,
		TermYears:    20,
	})

	assert.InDelta(t, 110_108.61, result.MonthlyPayment, 0.01)
	assert.InDelta(t, result.MonthlyPayment*240, result.TotalPayment, 1e-6)
	assert.InDelta(t, result.TotalPayment-10_000_000, result.TotalInterest, 1e-6)
}

func TestAmortize_TotalsMatchInstallments(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	for _, in := range []domain.LoanInput{
		{Principal: 1_000, InterestRate: 5, TermYears: 1},
		{Principal: 2_500_000, InterestRate: 9.5, TermYears: 7},
		{Principal: 75_000_000, InterestRate: 18, TermYears: 30},
	} {
		r := calc.Amortize(in)
		assert.InDelta(t, r.MonthlyPayment*float64(in.TermYears*12), r.TotalPayment, 1e-6)
		assert.Greater(t, r.TotalInterest, 0.0)
	}
}

func TestAmortize_NotComputable(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	cases := map[string]domain.LoanInput{
		"zero principal": {Principal: 0, InterestRate: 12, TermYears: 20},
		"negative rate":  {Principal: 1_000, InterestRate: -1, TermYears: 20},
		"zero rate":      {Principal: 1_000, InterestRate: 0, TermYears: 20},
		"zero term":      {Principal: 1_000, InterestRate: 12, TermYears: 0},
		"term too long":  {Principal: 1_000, InterestRate: 12, TermYears: DefaultMaxTermYears + 1},
		"huge term":      {Principal: 1_000, InterestRate: 12, TermYears: 100_000},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, domain.AmortizationResult{}, calc.Amortize(in))
			assert.Nil(t, calc.Schedule(in))
		})
	}
}

func TestAnnuityPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, annuityPayment(1200, 0, 12))
}

func TestAnnuityPayment_LongTermStaysFinite(t *testing.T) {
	// (1.01)^1.2e6 overflows; the payment tends to the monthly interest.
	payment := annuityPayment(1_000_000, 0.01, 1_200_000)

	assert.False(t, math.IsNaN(payment))
	assert.InDelta(t, 10_000.0, payment, 1e-6)
}

func TestAmortize_UnboundedTerm(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxTermYears = 0
	calc := NewCalculator(settings)

	result := calc.Amortize(domain.LoanInput{Principal: 1_000_000, InterestRate: 12, TermYears: 100_000})

	assert.InDelta(t, 10_000.0, result.MonthlyPayment, 1e-6)
	assert.False(t, math.IsInf(result.TotalPayment, 0))
}

func TestAmortize_MaxTermInclusive(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	in := domain.LoanInput{Principal: 1_000_000, InterestRate: 12, TermYears: DefaultMaxTermYears}

	assert.Positive(t, calc.Amortize(in).MonthlyPayment)
	assert.Len(t, calc.Schedule(in), DefaultMaxTermYears*12)
}

func TestSchedule_ClosesBalance(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	in := domain.LoanInput{Principal: 10_000_000, InterestRate: 12, TermYears: 20}

	entries := calc.Schedule(in)
	require.Len(t, entries, 240)

	var principal, interest float64
	for _, e := range entries {
		principal += e.Principal
		interest += e.Interest
	}

	summary := calc.Amortize(in)
	assert.InDelta(t, 10_000_000, principal, 1e-4)
	assert.InDelta(t, summary.TotalInterest, interest, 0.01)
	assert.Zero(t, entries[239].Balance)

	// First month: 1% of the principal is interest.
	assert.InDelta(t, 100_000, entries[0].Interest, 1e-9)
	assert.InDelta(t, summary.MonthlyPayment-100_000, entries[0].Principal, 1e-9)
	assert.Greater(t, entries[1].Principal, entries[0].Principal)
}
