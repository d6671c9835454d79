package service

import (
	"lanka-finance/domain"

	"github.com/samber/lo"
)

// Combinations splits target between two applicants at evenly spaced ratios
// from 0 (B carries everything) to 0.5 (even split) and resolves the salary
// each side needs. Splits whose search fails on a non-zero share are dropped;
// the rest keep ratio order.
func (c *Calculator) Combinations(target float64, splits int) []domain.SalaryCombination {
	if splits < 2 {
		return nil
	}

	return lo.FilterMap(lo.Range(splits), func(i int, _ int) (domain.SalaryCombination, bool) {
		ratio := float64(i) / float64(splits-1) * 0.5
		installmentA := target * ratio
		installmentB := target * (1 - ratio)

		salaryA := c.RequiredSalary(installmentA)
		salaryB := c.RequiredSalary(installmentB)

		if installmentA > 0 && salaryA <= 0 {
			return domain.SalaryCombination{}, false
		}
		if installmentB > 0 && salaryB <= 0 {
			return domain.SalaryCombination{}, false
		}

		return domain.SalaryCombination{
			SalaryA: salaryA,
			SalaryB: salaryB,
			Total:   salaryA + salaryB,
		}, true
	})
}

// DefaultCombinations uses the configured split count.
func (c *Calculator) DefaultCombinations(target float64) []domain.SalaryCombination {
	return c.Combinations(target, c.settings.Splits)
}
