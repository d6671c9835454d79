// Package config loads calculator and server settings from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"lanka-finance/service"
)

type Config struct {
	LogLevel   string           `toml:"log_level" yaml:"log_level"`
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`
	Loan       LoanConfig       `toml:"loan" yaml:"loan"`
	Server     ServerConfig     `toml:"server" yaml:"server"`
	Cache      CacheConfig      `toml:"cache" yaml:"cache"`
}

// BracketConfig is one APIT bracket. An AnnualLimit of 0 marks the top,
// unbounded bracket and is only valid last.
type BracketConfig struct {
	AnnualLimit float64 `toml:"annual_limit" yaml:"annual_limit"`
	Rate        float64 `toml:"rate" yaml:"rate"`
}

type CalculatorConfig struct {
	TaxRelief         float64         `toml:"tax_relief" yaml:"tax_relief"`
	Brackets          []BracketConfig `toml:"brackets" yaml:"brackets"`
	ContributionRate  float64         `toml:"contribution_rate" yaml:"contribution_rate"`
	ContributionBasis string          `toml:"contribution_basis" yaml:"contribution_basis"`
	FixedCharge       float64         `toml:"fixed_charge" yaml:"fixed_charge"`
	PortionRate       float64         `toml:"portion_rate" yaml:"portion_rate"`
	MaxTermYears      int             `toml:"max_term_years" yaml:"max_term_years"`
	SeedFactor        float64         `toml:"seed_factor" yaml:"seed_factor"`
	SearchStep        float64         `toml:"search_step" yaml:"search_step"`
	SearchCeiling     float64         `toml:"search_ceiling" yaml:"search_ceiling"`
	SearchStrategy    string          `toml:"search_strategy" yaml:"search_strategy"`
	Splits            int             `toml:"splits" yaml:"splits"`
}

// LoanConfig holds the defaults offered by the loan tools.
type LoanConfig struct {
	InterestRate       float64 `toml:"interest_rate" yaml:"interest_rate" json:"interest_rate"`
	PaymentTermYears   int     `toml:"payment_term_years" yaml:"payment_term_years" json:"payment_term_years"`
	EstimatorTermYears int     `toml:"estimator_term_years" yaml:"estimator_term_years" json:"estimator_term_years"`
}

type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins" yaml:"allowed_origins"`
	RateLimit       int      `toml:"rate_limit" yaml:"rate_limit"`
	RateLimitWindow Duration `toml:"rate_limit_window" yaml:"rate_limit_window"`
}

type CacheConfig struct {
	Backend   string   `toml:"backend" yaml:"backend"` // memory or redis
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	Prefix    string   `toml:"prefix" yaml:"prefix"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
}

// Duration wraps time.Duration for text config values like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

func Default() *Config {
	s := service.DefaultSettings()

	brackets := make([]BracketConfig, len(s.Brackets))
	for i, b := range s.Brackets {
		limit := b.AnnualLimit
		if math.IsInf(limit, 1) {
			limit = 0
		}
		brackets[i] = BracketConfig{AnnualLimit: limit, Rate: b.Rate}
	}

	return &Config{
		LogLevel: "info",
		Calculator: CalculatorConfig{
			TaxRelief:         s.TaxRelief,
			Brackets:          brackets,
			ContributionRate:  s.ContributionRate,
			ContributionBasis: string(s.ContributionBasis),
			FixedCharge:       s.FixedCharge,
			PortionRate:       s.PortionRate,
			MaxTermYears:      s.MaxTermYears,
			SeedFactor:        s.SeedFactor,
			SearchStep:        s.SearchStep,
			SearchCeiling:     s.SearchCeiling,
			SearchStrategy:    string(s.Strategy),
			Splits:            s.Splits,
		},
		Loan: LoanConfig{
			InterestRate:       service.DefaultInterestRate,
			PaymentTermYears:   service.DefaultPaymentTermYears,
			EstimatorTermYears: service.DefaultEstimatorTermYears,
		},
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
			RateLimit:       30,
			RateLimitWindow: Duration{time.Minute},
		},
		Cache: CacheConfig{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
			Prefix:    "lanka-finance:",
			TTL:       Duration{time.Hour},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// A bracket table in the file replaces the default one rather than merging
	// into it element by element.
	defaults := cfg.Calculator.Brackets
	cfg.Calculator.Brackets = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if len(cfg.Calculator.Brackets) == 0 {
		cfg.Calculator.Brackets = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	calc := c.Calculator

	if len(calc.Brackets) == 0 {
		errs = append(errs, errors.New("at least one tax bracket is required"))
	}
	for i, b := range calc.Brackets {
		if b.Rate < 0 || b.Rate >= 1 {
			errs = append(errs, fmt.Errorf("bracket %d: rate %v outside [0,1)", i, b.Rate))
		}
		if b.AnnualLimit < 0 {
			errs = append(errs, fmt.Errorf("bracket %d: negative limit", i))
		}
		if b.AnnualLimit == 0 && i != len(calc.Brackets)-1 {
			errs = append(errs, fmt.Errorf("bracket %d: only the last bracket may be unbounded", i))
		}
	}
	if calc.TaxRelief < 0 {
		errs = append(errs, errors.New("tax_relief must not be negative"))
	}
	if calc.ContributionRate < 0 || calc.ContributionRate >= 1 {
		errs = append(errs, errors.New("contribution_rate outside [0,1)"))
	}
	if calc.PortionRate <= 0 || calc.PortionRate > 1 {
		errs = append(errs, errors.New("portion_rate outside (0,1]"))
	}
	switch service.ContributionBasis(calc.ContributionBasis) {
	case service.BasisGross, service.BasisBasic:
	default:
		errs = append(errs, fmt.Errorf("unknown contribution_basis %q", calc.ContributionBasis))
	}
	switch service.SearchStrategy(calc.SearchStrategy) {
	case service.SearchLinear, service.SearchBinary:
	default:
		errs = append(errs, fmt.Errorf("unknown search_strategy %q", calc.SearchStrategy))
	}
	if calc.SeedFactor <= 0 {
		errs = append(errs, errors.New("seed_factor must be positive"))
	}
	if calc.SearchStep <= 0 || calc.SearchCeiling <= 0 {
		errs = append(errs, errors.New("search_step and search_ceiling must be positive"))
	}
	if calc.MaxTermYears <= 0 {
		errs = append(errs, errors.New("max_term_years must be positive"))
	}
	if calc.Splits < 2 {
		errs = append(errs, errors.New("splits must be at least 2"))
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.Server.RateLimit <= 0 {
		errs = append(errs, errors.New("rate_limit must be positive"))
	}
	if c.Server.RateLimitWindow.Duration <= 0 {
		errs = append(errs, errors.New("rate_limit_window must be positive"))
	}

	return errors.Join(errs...)
}

// Settings converts the calculator section for service.NewCalculator.
func (c *Config) Settings() service.Settings {
	calc := c.Calculator

	brackets := make([]service.TaxBracketSpec, len(calc.Brackets))
	for i, b := range calc.Brackets {
		limit := b.AnnualLimit
		if limit == 0 {
			limit = math.Inf(1)
		}
		brackets[i] = service.TaxBracketSpec{AnnualLimit: limit, Rate: b.Rate}
	}

	return service.Settings{
		TaxRelief:         calc.TaxRelief,
		Brackets:          brackets,
		ContributionRate:  calc.ContributionRate,
		ContributionBasis: service.ContributionBasis(calc.ContributionBasis),
		FixedCharge:       calc.FixedCharge,
		PortionRate:       calc.PortionRate,
		MaxTermYears:      calc.MaxTermYears,
		SeedFactor:        calc.SeedFactor,
		SearchStep:        calc.SearchStep,
		SearchCeiling:     calc.SearchCeiling,
		Strategy:          service.SearchStrategy(calc.SearchStrategy),
		Splits:            calc.Splits,
	}
}
