package service

import (
	"math"

	"lanka-finance/domain"
)

type ContributionBasis string

const (
	BasisGross ContributionBasis = "gross"
	BasisBasic ContributionBasis = "basic"
)

type SearchStrategy string

const (
	SearchLinear SearchStrategy = "linear"
	SearchBinary SearchStrategy = "binary"
)

// TaxBracketSpec is a bracket as published: an annual limit and a rate.
type TaxBracketSpec struct {
	AnnualLimit float64
	Rate        float64
}

// Settings parameterize every calculation the Calculator performs.
type Settings struct {
	TaxRelief         float64
	Brackets          []TaxBracketSpec
	ContributionRate  float64
	ContributionBasis ContributionBasis
	FixedCharge       float64
	PortionRate       float64
	MaxTermYears      int

	SeedFactor    float64
	SearchStep    float64
	SearchCeiling float64
	Strategy      SearchStrategy
	Splits        int
}

func DefaultSettings() Settings {
	return Settings{
		TaxRelief:         DefaultTaxRelief,
		Brackets:          DefaultBrackets(),
		ContributionRate:  DefaultContributionRate,
		ContributionBasis: BasisGross,
		FixedCharge:       DefaultFixedCharge,
		PortionRate:       DefaultPortionRate,
		MaxTermYears:      DefaultMaxTermYears,
		SeedFactor:        DefaultSeedFactor,
		SearchStep:        DefaultSearchStep,
		SearchCeiling:     DefaultSearchCeiling,
		Strategy:          SearchBinary,
		Splits:            DefaultSplits,
	}
}

func (s Settings) monthlyBrackets() []domain.TaxBracket {
	brackets := make([]domain.TaxBracket, len(s.Brackets))
	for i, b := range s.Brackets {
		limit := b.AnnualLimit / monthsPerYear
		if math.IsInf(b.AnnualLimit, 1) {
			limit = math.Inf(1)
		}
		brackets[i] = domain.TaxBracket{Limit: limit, Rate: b.Rate}
	}
	return brackets
}

// Calculator is the stateless numeric engine. It is safe for concurrent use.
type Calculator struct {
	settings Settings
	brackets []domain.TaxBracket
}

func NewCalculator(settings Settings) *Calculator {
	return &Calculator{
		settings: settings,
		brackets: settings.monthlyBrackets(),
	}
}

var defaultCalculator = NewCalculator(DefaultSettings())

func (c *Calculator) Settings() Settings {
	return c.settings
}

func (c *Calculator) Brackets() []domain.TaxBracket {
	return append([]domain.TaxBracket(nil), c.brackets...)
}
