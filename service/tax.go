package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundToCents rounds half away from zero on the cent.
func roundToCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// CalculateTax returns the monthly APIT on a gross monthly salary using the
// default relief and bracket table.
func CalculateTax(grossMonthlySalary float64) float64 {
	return defaultCalculator.Tax(grossMonthlySalary)
}

// Tax applies the relief and then walks the brackets in order, each one
// taxing the next slice of the remainder up to its limit.
func (c *Calculator) Tax(grossMonthlySalary float64) float64 {
	if math.IsInf(grossMonthlySalary, 0) {
		return 0
	}

	remaining := grossMonthlySalary - c.settings.TaxRelief
	// NaN fails this comparison too.
	if !(remaining > 0) {
		return 0
	}

	var tax float64
	for _, bracket := range c.brackets {
		if remaining <= 0 {
			break
		}
		taxable := min(remaining, bracket.Limit)
		tax += taxable * bracket.Rate
		remaining -= taxable
	}

	return roundToCents(tax)
}
