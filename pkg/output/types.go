// Package output provides report construction and formatting for
// aggregated race records.
package output

import (
	"time"

	"github.com/mpage/cpython-tsan-races/pkg/aggregator"
	"github.com/mpage/cpython-tsan-races/pkg/parser"
)

// Report is the complete output of one run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Races lists one view per distinct signature, most frequent first.
	Races []RaceView

	// Metadata provides context about the run.
	Metadata Metadata
}

// RaceView is the presentation form of one aggregated record.
type RaceView struct {
	// Function, File and Line identify the signature frame. For the
	// unknown group Function is "(unknown)", File is "-" and Line is 0.
	Function string
	File     string
	Line     int

	// ID is a stable identifier for anchors; "unknown" for the unknown
	// group.
	ID string

	// Count is the number of observed occurrences.
	Count int

	// Tests lists the originating tests in lexical order.
	Tests []string

	// Examples holds the raw block text of each occurrence, input order.
	Examples []string
}

// Summary provides aggregate statistics.
type Summary struct {
	// DistinctRaces is the number of distinct signatures.
	DistinctRaces int

	// TotalOccurrences is the total number of race blocks observed.
	TotalOccurrences int

	// DistinctTests is the number of distinct tests seen on status lines.
	DistinctTests int

	// LinesProcessed is the total number of log lines consumed.
	LinesProcessed int
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the log inputs that were read.
	Sources []string

	// AnalyzedAt is when the run finished.
	AnalyzedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// NewReport builds a Report from an aggregator snapshot and parse stats.
func NewReport(records []*aggregator.Record, stats parser.Stats, sources []string, started time.Time) *Report {
	report := &Report{
		Races: make([]RaceView, 0, len(records)),
		Metadata: Metadata{
			Sources:    sources,
			AnalyzedAt: time.Now(),
		},
		Summary: Summary{
			DistinctRaces:  len(records),
			DistinctTests:  stats.DistinctTests,
			LinesProcessed: stats.Lines,
		},
	}
	report.Metadata.Duration = report.Metadata.AnalyzedAt.Sub(started)

	for _, rec := range records {
		view := RaceView{
			Function: "(unknown)",
			File:     "-",
			ID:       "unknown",
			Count:    rec.Count(),
			Tests:    rec.SortedTests(),
			Examples: rec.Examples,
		}
		if rec.Loc != nil {
			view.Function = rec.Loc.Func
			view.File = rec.Loc.File
			view.Line = rec.Loc.Line
			view.ID = rec.Loc.ID()
		}
		report.Races = append(report.Races, view)
		report.Summary.TotalOccurrences += rec.Count()
	}

	return report
}

// HasRaces returns true if any race was recorded.
func (r *Report) HasRaces() bool {
	return len(r.Races) > 0
}
