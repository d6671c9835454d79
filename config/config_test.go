package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanka-finance/service"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_MatchesCalculatorDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	settings := cfg.Settings()
	assert.Equal(t, service.DefaultSettings(), settings)
	assert.True(t, math.IsInf(settings.Brackets[4].AnnualLimit, 1))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
log_level = "debug"

[calculator]
contribution_basis = "basic"
fixed_charge = 100
search_strategy = "linear"

[[calculator.brackets]]
annual_limit = 1200000
rate = 0.10

[[calculator.brackets]]
rate = 0.20

[server]
port = 9090
rate_limit_window = "30s"

[cache]
backend = "redis"
ttl = "5m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "basic", cfg.Calculator.ContributionBasis)
	assert.Equal(t, 100.0, cfg.Calculator.FixedCharge)
	assert.Equal(t, 0.08, cfg.Calculator.ContributionRate)
	assert.Equal(t, []BracketConfig{{AnnualLimit: 1_200_000, Rate: 0.10}, {Rate: 0.20}}, cfg.Calculator.Brackets)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimitWindow.Duration)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Duration)

	calc := service.NewCalculator(cfg.Settings())
	// 30,000 above relief: 100,000 a month at 10%, nothing beyond.
	assert.InDelta(t, 3000.0, calc.Tax(180_000), 0.001)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
calculator:
  portion_rate: 0.5
  splits: 10
loan:
  interest_rate: 9.5
cache:
  ttl: 90s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Calculator.PortionRate)
	assert.Equal(t, 10, cfg.Calculator.Splits)
	assert.Equal(t, 9.5, cfg.Loan.InterestRate)
	assert.Equal(t, 25, cfg.Loan.EstimatorTermYears)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL.Duration)
	assert.Len(t, cfg.Calculator.Brackets, 5)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.json", `{}`))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeFile(t, "bad.toml", `[calculator`))
	assert.ErrorContains(t, err, "parse toml config")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"rate at one":        func(c *Config) { c.Calculator.Brackets[0].Rate = 1 },
		"unbounded not last": func(c *Config) { c.Calculator.Brackets[1].AnnualLimit = 0 },
		"no brackets":        func(c *Config) { c.Calculator.Brackets = nil },
		"contribution rate":  func(c *Config) { c.Calculator.ContributionRate = -0.1 },
		"portion rate":       func(c *Config) { c.Calculator.PortionRate = 0 },
		"basis":              func(c *Config) { c.Calculator.ContributionBasis = "net" },
		"strategy":           func(c *Config) { c.Calculator.SearchStrategy = "random" },
		"step":               func(c *Config) { c.Calculator.SearchStep = 0 },
		"splits":             func(c *Config) { c.Calculator.Splits = 1 },
		"cache backend":      func(c *Config) { c.Cache.Backend = "memcached" },
		"rate limit":         func(c *Config) { c.Server.RateLimit = 0 },
		"seed factor":        func(c *Config) { c.Calculator.SeedFactor = 0 },
		"max term":           func(c *Config) { c.Calculator.MaxTermYears = 0 },
		"rate limit window":  func(c *Config) { c.Server.RateLimitWindow = Duration{} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
