package config

import (
	"os"
	"strconv"

	"crosstab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	InputDir      string
	OutputDir     string
	Alpha         float64
	FallbackLabel string
	Workers       int
	TopPairs      int
	Quiet         bool
}

// Defaults used when neither flags nor environment provide a value
const (
	DefaultInputDir      = "csv"
	DefaultOutputDir     = "output"
	DefaultAlpha         = 0.05
	DefaultFallbackLabel = "Sem resposta"
	DefaultWorkers       = 4
	DefaultTopPairs      = 10
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		InputDir:      getEnvOrDefault("CROSSTAB_INPUT_DIR", DefaultInputDir),
		OutputDir:     getEnvOrDefault("CROSSTAB_OUTPUT_DIR", DefaultOutputDir),
		Alpha:         getEnvFloatOrDefault("CROSSTAB_ALPHA", DefaultAlpha),
		FallbackLabel: getEnvOrDefault("CROSSTAB_FALLBACK_LABEL", DefaultFallbackLabel),
		Workers:       getEnvIntOrDefault("CROSSTAB_WORKERS", DefaultWorkers),
		TopPairs:      getEnvIntOrDefault("CROSSTAB_TOP_PAIRS", DefaultTopPairs),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Validate checks the configuration invariants
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.ConfigInvalid("input directory is required")
	}
	if c.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.ConfigInvalid("alpha must be in (0, 1)")
	}
	if c.FallbackLabel == "" {
		return errors.ConfigInvalid("fallback label is required")
	}
	if c.Workers < 1 {
		return errors.ConfigInvalid("workers must be at least 1")
	}
	if c.TopPairs < 1 {
		return errors.ConfigInvalid("top pairs must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
