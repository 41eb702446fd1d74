// Package aggregator merges race events into per-signature records.
package aggregator

import (
	"sort"

	"github.com/mpage/cpython-tsan-races/pkg/parser"
)

// Record is the aggregated entry for one race signature.
type Record struct {
	// Loc is the signature this record represents; nil for the group of
	// blocks with no derivable signature.
	Loc *parser.Location

	// Tests is the set of test names known to have triggered this race.
	Tests map[string]struct{}

	// Examples holds the raw block text of every observed occurrence, in
	// order of first appearance in the input stream.
	Examples []string
}

// Count returns the number of observed occurrences.
func (r *Record) Count() int {
	return len(r.Examples)
}

// ID returns the record's location identifier, or "" for the unknown group.
func (r *Record) ID() string {
	if r.Loc == nil {
		return ""
	}
	return r.Loc.ID()
}

// SortedTests returns the test names in lexical order.
func (r *Record) SortedTests() []string {
	tests := make([]string, 0, len(r.Tests))
	for t := range r.Tests {
		tests = append(tests, t)
	}
	sort.Strings(tests)
	return tests
}

// Aggregator owns the signature → Record mapping. It is the only mutator
// of its records and implements parser.EventSink.
type Aggregator struct {
	records map[parser.Location]*Record
}

// unknownKey is the reserved map key for events without a signature.
// Frame function names are never empty, so it cannot collide with a real
// location.
var unknownKey = parser.Location{}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		records: make(map[parser.Location]*Record),
	}
}

// Ingest applies one race event. The first event for a signature creates
// its record; every event appends its example, and its test name when
// present. Repeated identical events are deliberately not deduplicated:
// each one is a real observed occurrence.
func (a *Aggregator) Ingest(ev *parser.RaceEvent) {
	key := unknownKey
	if ev.Loc != nil {
		key = *ev.Loc
	}

	rec := a.records[key]
	if rec == nil {
		rec = &Record{
			Loc:   ev.Loc,
			Tests: make(map[string]struct{}),
		}
		a.records[key] = rec
	}

	rec.Examples = append(rec.Examples, ev.Example)
	if ev.Test != "" {
		rec.Tests[ev.Test] = struct{}{}
	}
}

// Len returns the number of distinct records.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Snapshot returns all records sorted by descending occurrence count.
// Equal counts are ordered by location ID for deterministic output.
func (a *Aggregator) Snapshot() []*Record {
	out := make([]*Record, 0, len(a.records))
	for _, rec := range a.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count() != out[j].Count() {
			return out[i].Count() > out[j].Count()
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}
