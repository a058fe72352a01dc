// Package common provides shared utilities for Solde
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Solde
type Config struct {
	Environment string         `toml:"environment"`
	Snapshot    SnapshotConfig `toml:"snapshot"`
	Forecast    ForecastConfig `toml:"forecast"`
	Insights    InsightConfig  `toml:"insights"`
	Logging     LoggingConfig  `toml:"logging"`
}

// SnapshotConfig locates the ledger snapshot consumed by the CLI shell.
type SnapshotConfig struct {
	Path string `toml:"path"`
}

// ForecastConfig scopes the forecast computation.
type ForecastConfig struct {
	HorizonMonths      int      `toml:"horizon_months"`
	AccountIDs         []string `toml:"account_ids"` // empty = all accounts
	IncludeSimulations bool     `toml:"include_simulations"`
	ReferenceDate      string   `toml:"reference_date"` // "2006-01-02"; empty = today
}

// GetReferenceDate parses the configured reference date, falling back to now.
func (c *ForecastConfig) GetReferenceDate(now time.Time) time.Time {
	s := strings.TrimSpace(c.ReferenceDate)
	if s == "" {
		return now
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return now
	}
	return d
}

// InsightConfig scopes the savings and expense insight computations.
type InsightConfig struct {
	IncludedIncomeCategoryIDs  []string `toml:"included_income_category_ids"`
	ExcludedExpenseCategoryIDs []string `toml:"excluded_expense_category_ids"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Snapshot: SnapshotConfig{
			Path: "ledger.json",
		},
		Forecast: ForecastConfig{
			HorizonMonths: 12,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if config.Forecast.HorizonMonths <= 0 {
		config.Forecast.HorizonMonths = 12
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SOLDE_ENV"); env != "" {
		config.Environment = env
	}

	if path := os.Getenv("SOLDE_SNAPSHOT"); path != "" {
		config.Snapshot.Path = path
	}

	if level := os.Getenv("SOLDE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if horizon := os.Getenv("SOLDE_FORECAST_HORIZON"); horizon != "" {
		if h, err := strconv.Atoi(horizon); err == nil && h > 0 {
			config.Forecast.HorizonMonths = h
		}
	}
}
