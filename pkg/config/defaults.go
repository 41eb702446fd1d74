package config

import (
	"os"
	"strings"
)

// Default values for configuration.
const (
	// DefaultSeparator is the block delimiter ThreadSanitizer prints
	// around each race report (18 '=' characters).
	DefaultSeparator = "=================="

	// DefaultTestStatusPattern matches the progress lines regrtest emits
	// between reports; capture group 1 is the test name.
	DefaultTestStatusPattern = `^\d+:\d+:\d+ load avg: \d+\.\d+ \[ ?\d+/\d+\] (test_[a-zA-Z0-9]+)`
)

// DefaultPrimitivePrefixes lists the function-name prefixes skipped during
// signature derivation. The atomic helpers show up as the innermost frame
// of nearly every race and would collapse unrelated races into one group.
var DefaultPrimitivePrefixes = []string{
	"_Py_atomic",
}

// Environment variable names.
const (
	// EnvPrimitivePrefixes appends comma-separated prefixes to the skip list.
	EnvPrimitivePrefixes = "TSAN_RACES_PRIMITIVE_PREFIXES"
)

// DefaultConfig returns a configuration with the compiled-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Separator:         DefaultSeparator,
		PrimitivePrefixes: append([]string(nil), DefaultPrimitivePrefixes...),
		TestStatus: TestStatusConfig{
			Pattern: DefaultTestStatusPattern,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if extra := os.Getenv(EnvPrimitivePrefixes); extra != "" {
		for _, p := range strings.Split(extra, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.PrimitivePrefixes = append(c.PrimitivePrefixes, p)
			}
		}
	}
}
