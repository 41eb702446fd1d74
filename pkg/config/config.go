package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles regex patterns.
func Validate(cfg *Config) error {
	if cfg.Separator == "" {
		return errors.New("separator: must not be empty")
	}

	for i, prefix := range cfg.PrimitivePrefixes {
		if prefix == "" {
			return fmt.Errorf("primitive_prefixes[%d]: must not be empty", i)
		}
	}

	if err := validateTestStatus(&cfg.TestStatus); err != nil {
		return fmt.Errorf("test_status: %w", err)
	}

	return nil
}

func validateTestStatus(ts *TestStatusConfig) error {
	if ts.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(ts.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return errors.New("pattern must have at least one capture group for the test name")
	}

	ts.compiledPattern = re

	return nil
}
