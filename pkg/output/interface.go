package output

import (
	"context"
	"io"
)

// Formatter renders a report in a specific format.
// Formatters are pure: they read the report and write to w, nothing else.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (html, text, json).
	Name() string
}
