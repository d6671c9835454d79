package service

import "math"

const (
	DefaultTaxRelief        = 150_000.0 // monthly
	DefaultContributionRate = 0.08      // EPF
	DefaultFixedCharge      = 75.0      // welfare
	DefaultPortionRate      = 0.6

	DefaultSeedFactor    = 1.5
	DefaultSearchStep    = 100.0
	DefaultSearchCeiling = 10_000_000.0
	DefaultSplits        = 20

	DefaultInterestRate       = 12.0
	DefaultPaymentTermYears   = 20
	DefaultEstimatorTermYears = 25
	DefaultMaxTermYears       = 50 // 600 months

	monthsPerYear = 12
)

// DefaultBrackets is the APIT table with annual limits converted to monthly.
func DefaultBrackets() []TaxBracketSpec {
	return []TaxBracketSpec{
		{AnnualLimit: 1_000_000, Rate: 0.06},
		{AnnualLimit: 500_000, Rate: 0.18},
		{AnnualLimit: 500_000, Rate: 0.24},
		{AnnualLimit: 500_000, Rate: 0.30},
		{AnnualLimit: math.Inf(1), Rate: 0.36},
	}
}
