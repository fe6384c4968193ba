// Package config loads sudobench configuration from an optional YAML
// file, with environment-variable overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds run configuration. Module paths are never configured
// here; they come from the command line only.
type Config struct {
	// Puzzles is the path of the puzzle stream. Empty means stdin.
	Puzzles string `yaml:"puzzles"`

	// SolveTimeout bounds a single Solve call, e.g. "30s". Empty or
	// "0" disables the bound, leaving a stalled module to block the
	// run forever, which is the historical behavior.
	SolveTimeout string `yaml:"solve_timeout"`

	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// WatchConfig configures --watch mode.
type WatchConfig struct {
	// Debounce collapses bursts of file events into one re-run.
	Debounce string `yaml:"debounce"`
}

// LoggingConfig configures the run log.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{Debounce: "500ms"},
	}
}

// Load reads the configuration file at path, falling back to defaults
// when path is empty. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUDOBENCH_PUZZLES"); v != "" {
		c.Puzzles = v
	}
	if v := os.Getenv("SUDOBENCH_SOLVE_TIMEOUT"); v != "" {
		c.SolveTimeout = v
	}
	if v := os.Getenv("SUDOBENCH_VERBOSE"); v == "1" || v == "true" {
		c.Logging.Verbose = true
	}
}

// SolveTimeoutDuration parses the solve timeout. Zero means disabled.
func (c *Config) SolveTimeoutDuration() (time.Duration, error) {
	if c.SolveTimeout == "" || c.SolveTimeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.SolveTimeout)
	if err != nil {
		return 0, fmt.Errorf("solve_timeout: %w", err)
	}
	if d < 0 {
		return 0, errors.New("solve_timeout: must not be negative")
	}
	return d, nil
}

// WatchDebounce parses the watch debounce interval.
func (c *Config) WatchDebounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 500 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	return d, nil
}
