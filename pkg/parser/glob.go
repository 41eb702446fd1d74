package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandInputs expands a list of log paths and glob patterns into a
// deduplicated, sorted list of file paths. The stdin token "-" is passed
// through untouched and always sorts first. Patterns matching nothing are
// kept as literal paths so that opening them reports a useful error.
func ExpandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	stdin := false

	for _, arg := range args {
		if arg == "-" {
			stdin = true
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)
	if stdin {
		result = append([]string{"-"}, result...)
	}

	return result, nil
}
