// Package config loads and validates cellcheck configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HistoryConfig represents invocation history configuration
type HistoryConfig struct {
	// Enabled enables recording of invocations
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	// (empty = resolved against the cellcheck home at load time)
	DBPath string `yaml:"db_path"`

	// KeepDays is the number of days to keep invocation records
	KeepDays int `yaml:"keep_days"`
}

// Config represents cellcheck configuration options
type Config struct {
	// CheckerPath is the path to the type checker executable
	// (empty = "mypy" found in PATH)
	CheckerPath string `yaml:"checker_path"`

	// Timeout is the maximum execution time for one checker invocation
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// DefaultMagic is the directive used when none is named
	DefaultMagic string `yaml:"default_magic"`

	// History contains invocation history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		CheckerPath:  "mypy",
		Timeout:      2 * time.Minute,
		LogLevel:     "info",
		DefaultMagic: "mypy",
		History: HistoryConfig{
			Enabled:  true,
			DBPath:   "",
			KeepDays: 90,
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", c.Timeout)
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if c.DefaultMagic == "" {
		return fmt.Errorf("default_magic must not be empty")
	}

	if c.History.KeepDays < 0 {
		return fmt.Errorf("history keep_days must not be negative, got %d", c.History.KeepDays)
	}

	return nil
}
