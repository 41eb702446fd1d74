package parser

import "regexp"

// TestExtractor recognizes test-runner progress lines and extracts the
// name of the currently running test.
type TestExtractor struct {
	pattern *regexp.Regexp
}

// NewTestExtractor creates an extractor from a compiled status pattern.
// Capture group 1 of the pattern is the test name.
func NewTestExtractor(pattern *regexp.Regexp) *TestExtractor {
	return &TestExtractor{pattern: pattern}
}

// Extract attempts to extract a test name from a line.
// Returns the name and true on a match, or "" and false otherwise.
func (e *TestExtractor) Extract(line string) (string, bool) {
	matches := e.pattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}
