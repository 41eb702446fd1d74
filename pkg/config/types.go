// Package config provides configuration loading and validation for the
// race grouper.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
// Every field has a compiled-in default matching the output of CPython's
// test runner under ThreadSanitizer; a config file only needs to name the
// fields it overrides.
type Config struct {
	// Separator is the exact line that opens and closes a race report
	// block in the detector output.
	Separator string `yaml:"separator"`

	// PrimitivePrefixes lists function-name prefixes treated as
	// synchronization primitives. Stack frames whose function matches one
	// of these prefixes are skipped when deriving a race signature.
	PrimitivePrefixes []string `yaml:"primitive_prefixes"`

	// TestStatus defines how to recognize test-runner progress lines and
	// extract the running test's name from them.
	TestStatus TestStatusConfig `yaml:"test_status"`
}

// TestStatusConfig defines how to extract the current test name from
// runner progress lines.
type TestStatusConfig struct {
	// Pattern is a regex matched against each line outside a race block.
	// Must contain at least one capture group; group 1 is the test name.
	Pattern string `yaml:"pattern"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled test-status regex.
func (t *TestStatusConfig) CompiledPattern() *regexp.Regexp {
	return t.compiledPattern
}
