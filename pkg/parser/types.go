// Package parser recognizes race report blocks in ThreadSanitizer log
// streams and derives a signature Location for each one.
package parser

import "fmt"

// Line is a single raw line read from a log stream.
type Line struct {
	// Text is the line content without its trailing newline.
	Text string

	// Source is the file path this line came from ("-" for stdin).
	Source string

	// Num is the 1-based line number in the source.
	Num int
}

// Location identifies a race by its first meaningful stack frame.
// It is a plain value type: two Locations compare equal iff all three
// fields are equal, which makes it usable directly as a map key.
type Location struct {
	// Func is the function name at the frame.
	Func string

	// File is the base filename (no directory) where the frame occurred.
	File string

	// Line is the line number; 0 when the frame carried no parseable one.
	Line int
}

// ID returns a deterministic identifier for the location, suitable for
// referencing a record from rendered output.
func (l Location) ID() string {
	return fmt.Sprintf("%s:%s:%d", l.Func, l.File, l.Line)
}

// RaceEvent is one detected race block, emitted by the Parser.
type RaceEvent struct {
	// Loc is the derived signature, or nil when no qualifying stack frame
	// was found in the block.
	Loc *Location

	// Example is the block's raw text, newline-joined, separators excluded.
	Example string

	// Test is the name of the test that was running when the race was
	// reported; empty when no test-status line preceded the block.
	Test string
}

// EventSink receives race events in stream order.
type EventSink interface {
	Ingest(ev *RaceEvent)
}

// Stats summarizes one parsing pass over a stream.
type Stats struct {
	// Lines is the total number of lines consumed.
	Lines int

	// StatusLines is the number of test-status lines recognized.
	StatusLines int

	// Blocks is the number of completed race blocks.
	Blocks int

	// Discarded is the number of unclosed blocks dropped at end of a
	// stream.
	Discarded int

	// DistinctTests is the number of distinct test names seen on status
	// lines.
	DistinctTests int
}
