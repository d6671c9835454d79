package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearCalculator() *Calculator {
	settings := DefaultSettings()
	settings.Strategy = SearchLinear
	return NewCalculator(settings)
}

func TestRequiredSalary_NonPositiveTarget(t *testing.T) {
	for _, calc := range []*Calculator{NewCalculator(DefaultSettings()), linearCalculator()} {
		assert.Zero(t, calc.RequiredSalary(0))
		assert.Zero(t, calc.RequiredSalary(-500))
	}
}

func TestRequiredSalary_BelowRelief(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	// No tax below relief: 0.52 of salary is available.
	assert.Equal(t, 38_500.0, calc.RequiredSalary(20_000))
	assert.Equal(t, 96_200.0, calc.RequiredSalary(50_000))
}

func TestRequiredSalary_WithTax(t *testing.T) {
	assert.Equal(t, 197_900.0, NewCalculator(DefaultSettings()).RequiredSalary(100_000))
}

func TestRequiredSalary_TightAtStep(t *testing.T) {
	calc := NewCalculator(DefaultSettings())

	// Targets whose seed lands on the step lattice.
	for _, target := range []float64{20_000, 50_000, 100_000, 400_000, 1_000_000} {
		salary := calc.RequiredSalary(target)
		require.Positive(t, salary, "target %v", target)

		assert.GreaterOrEqual(t, calc.Eligibility(salary), target, "target %v", target)
		assert.Less(t, calc.Eligibility(salary-100), target, "target %v", target)
		assert.Zero(t, int64(salary)%100, "target %v", target)
	}
}

func TestRequiredSalary_Unreachable(t *testing.T) {
	for _, calc := range []*Calculator{NewCalculator(DefaultSettings()), linearCalculator()} {
		// Seed already past the ceiling.
		assert.Zero(t, calc.RequiredSalary(7_000_000))
		// Eligibility at the ceiling is about 1.69M.
		assert.Zero(t, calc.RequiredSalary(1_700_000))
	}
}

func TestRequiredSalary_BinaryMatchesLinear(t *testing.T) {
	binary := NewCalculator(DefaultSettings())
	linear := linearCalculator()

	targets := []float64{1, 99.99, 1_234.567, 20_000, 50_000, 77_777.77, 100_000, 250_000, 777_777, 1_500_000, 1_690_000}
	for _, target := range targets {
		assert.Equal(t, linear.RequiredSalary(target), binary.RequiredSalary(target), "target %v", target)
	}
}

func TestGuesses(t *testing.T) {
	var got []float64
	for g := range guesses(150, 100, 500) {
		got = append(got, g)
	}
	assert.Equal(t, []float64{150, 250, 350, 450}, got)

	var first []float64
	for g := range guesses(0, 1, 10) {
		first = append(first, g)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []float64{0, 1}, first)
}
