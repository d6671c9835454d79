// Package cmd implements the lanka-finance command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lanka-finance/config"
	"lanka-finance/repository"
	"lanka-finance/service"
)

var (
	cfgFile  string
	logLevel string
)

var log = logrus.WithField("module", "cmd")

var rootCmd = &cobra.Command{
	Use:   "lanka-finance",
	Short: "Sri Lankan salary, tax and home-loan calculators",
	Long: `lanka-finance computes monthly APIT, net salary after EPF and welfare,
fixed-rate loan installments, loan eligibility, and the salary needed to
carry a loan, alone or split between two applicants.

Free-text amounts are accepted: "250,000" and "LKR 250000" both read as 250000.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
}

// loadConfig reads the config file and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)

	return cfg, nil
}

// newCache returns the configured cache and a function releasing it.
func newCache(ctx context.Context, cfg config.CacheConfig) (repository.CacheRepository, func(), error) {
	if cfg.Backend != "redis" {
		return repository.NewMemoryCache(), func() {}, nil
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.Prefix)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		cache.Close()
		return nil, nil, err
	}
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.WithError(err).Warn("closing redis cache")
		}
	}, nil
}

func newEstimator(ctx context.Context, cfg *config.Config) (*service.EstimatorService, func(), error) {
	cache, release, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	calc := service.NewCalculator(cfg.Settings())
	return service.NewEstimatorService(calc, cache, cfg.Cache.TTL.Duration), release, nil
}
