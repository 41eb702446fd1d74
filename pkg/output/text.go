package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes raw example blocks in text output.
	Verbose bool

	// Quiet restricts output to the summary line.
	Quiet bool
}

// TextFormatter renders reports as human-readable text for terminals.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		f.formatSummary(report, w)
		return nil
	}

	fmt.Fprintln(w, "=== ThreadSanitizer Race Report ===")
	fmt.Fprintln(w)

	for _, race := range report.Races {
		fmt.Fprintf(w, "%s (%s:%d)\n", race.Function, race.File, race.Line)
		fmt.Fprintf(w, "  Occurrences: %d\n", race.Count)
		if len(race.Tests) > 0 {
			fmt.Fprintf(w, "  Tests: %s\n", strings.Join(race.Tests, ", "))
		}
		if f.opts.Verbose {
			for _, example := range race.Examples {
				fmt.Fprintln(w, indent(example, "    | "))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	f.formatSummary(report, w)
	return nil
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) {
	fmt.Fprintf(w, "%d distinct races, %d occurrences, %d tests, %d lines processed\n",
		report.Summary.DistinctRaces,
		report.Summary.TotalOccurrences,
		report.Summary.DistinctTests,
		report.Summary.LinesProcessed)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
