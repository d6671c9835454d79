package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanka-finance/domain"
)

func TestEstimate_NotComputable(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	cases := map[string]domain.EstimationInput{
		"no cost":         {HouseCost: 0, InterestRate: 12, TermYears: 25},
		"no rate":         {HouseCost: 10_000_000, InterestRate: 0, TermYears: 25},
		"no term":         {HouseCost: 10_000_000, InterestRate: 12, TermYears: 0},
		"term too long":   {HouseCost: 10_000_000, InterestRate: 12, TermYears: 100_000},
		"fully paid":      {HouseCost: 10_000_000, DownPayment: 10_000_000, InterestRate: 12, TermYears: 25},
		"overpaid, joint": {HouseCost: 1_000, DownPayment: 5_000, InterestRate: 12, TermYears: 25, ApplicantType: domain.ApplicantJoint},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			result := calc.Estimate(in)
			assert.Zero(t, result.LoanAmount)
			assert.Zero(t, result.MonthlyPayment)
			assert.Empty(t, result.JointCombinations)
			assert.Empty(t, result.Error)
		})
	}
}

func TestEstimate_Single(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	result := calc.Estimate(domain.EstimationInput{
		HouseCost:     15_000_000,
		DownPayment:   5_000_000,
		InterestRate:  12,
		TermYears:     25,
		ApplicantType: domain.ApplicantSingle,
	})

	assert.Equal(t, 10_000_000.0, result.LoanAmount)
	assert.InDelta(t, 105_322.4, result.MonthlyPayment, 0.5)
	assert.Equal(t, calc.RequiredSalary(result.MonthlyPayment), result.SingleRequiredSalary)
	assert.Positive(t, result.SingleRequiredSalary)
	assert.Len(t, result.JointCombinations, DefaultSplits)
	assert.Empty(t, result.Error)
}

func TestEstimate_TooExpensive(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	in := domain.EstimationInput{HouseCost: 500_000_000, InterestRate: 12, TermYears: 25}

	single := calc.Estimate(in)
	require.Positive(t, single.MonthlyPayment)
	assert.Zero(t, single.SingleRequiredSalary)
	assert.Equal(t, UserMessage(ErrSalaryTooHigh), single.Error)

	in.ApplicantType = domain.ApplicantJoint
	joint := calc.Estimate(in)
	assert.Empty(t, joint.JointCombinations)
	assert.Equal(t, UserMessage(ErrCombinedSalaryTooHigh), joint.Error)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t,
		"The required salary is likely too high to estimate. Please check your inputs.",
		UserMessage(ErrSalaryTooHigh))
	assert.Equal(t,
		"The required combined salary is likely too high to estimate. Please check your inputs.",
		UserMessage(errors.Join(errors.New("estimate"), ErrCombinedSalaryTooHigh)))
	assert.Equal(t, "other", UserMessage(errors.New("other")))
}
