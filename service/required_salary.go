package service

import (
	"iter"
	"math"
	"sort"
)

// guesses yields seed, seed+step, ... while below ceiling.
func guesses(seed, step, ceiling float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for guess := seed; guess < ceiling; guess += step {
			if !yield(guess) {
				return
			}
		}
	}
}

// RequiredSalary returns the smallest salary, snapped up to the search step,
// whose eligible installment covers target. It returns 0 when target is not
// positive or when no salary below the ceiling is enough; callers holding a
// positive target must read 0 as failure.
func (c *Calculator) RequiredSalary(target float64) float64 {
	if !(target > 0) {
		return 0
	}

	if c.settings.Strategy == SearchLinear {
		return c.requiredSalaryLinear(target)
	}
	return c.requiredSalaryBinary(target)
}

func (c *Calculator) affords(salary, target float64) bool {
	return c.Eligibility(salary) >= target
}

func (c *Calculator) snap(salary float64) float64 {
	step := c.settings.SearchStep
	return math.Ceil(salary/step) * step
}

func (c *Calculator) requiredSalaryLinear(target float64) float64 {
	s := c.settings
	for guess := range guesses(target*s.SeedFactor, s.SearchStep, s.SearchCeiling) {
		if c.affords(guess, target) {
			return c.snap(guess)
		}
	}
	return 0
}

// requiredSalaryBinary searches the same lattice as the linear scan. Eligibility
// is non-decreasing in salary because every marginal tax rate is below the
// portion rate less the contribution rate.
func (c *Calculator) requiredSalaryBinary(target float64) float64 {
	s := c.settings
	seed := target * s.SeedFactor
	if seed >= s.SearchCeiling {
		return 0
	}

	count := int(math.Ceil((s.SearchCeiling - seed) / s.SearchStep))
	at := func(k int) float64 { return seed + float64(k)*s.SearchStep }
	// Guard the last lattice point against rounding past the ceiling.
	for count > 0 && at(count-1) >= s.SearchCeiling {
		count--
	}

	k := sort.Search(count, func(k int) bool {
		return c.affords(at(k), target)
	})
	if k == count {
		return 0
	}
	return c.snap(at(k))
}
