package parser

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// state is the parser's position in the stream.
type state int

const (
	// stateScanning: between blocks, watching for status lines and an
	// opening separator.
	stateScanning state = iota

	// stateInBlock: accumulating lines of an open race block until the
	// closing separator.
	stateInBlock
)

// Parser is the two-state machine that turns a line stream into race
// events. It is not safe for concurrent use.
type Parser struct {
	separator string
	prefixes  []string
	extractor *TestExtractor

	state       state
	currentTest string
	pending     []string

	stats     Stats
	seenTests map[string]struct{}
}

// New creates a Parser.
// The extractor recognizes test-status lines; primitivePrefixes are the
// function prefixes skipped during signature derivation.
func New(separator string, primitivePrefixes []string, extractor *TestExtractor) *Parser {
	return &Parser{
		separator: separator,
		prefixes:  primitivePrefixes,
		extractor: extractor,
		seenTests: make(map[string]struct{}),
	}
}

// ProcessLine feeds one line through the state machine.
// It returns a non-nil event when the line closes a race block, and an
// error when the closing block contains a malformed stack frame.
func (p *Parser) ProcessLine(text string) (*RaceEvent, error) {
	p.stats.Lines++

	switch p.state {
	case stateScanning:
		if test, ok := p.extractor.Extract(text); ok {
			p.currentTest = test
			p.stats.StatusLines++
			if _, dup := p.seenTests[test]; !dup {
				p.seenTests[test] = struct{}{}
				p.stats.DistinctTests++
			}
		} else if text == p.separator {
			p.state = stateInBlock
			p.pending = nil
		}
		// Anything else outside a block is ignored.
		return nil, nil

	case stateInBlock:
		if text != p.separator {
			p.pending = append(p.pending, text)
			return nil, nil
		}

		loc, err := DeriveLocation(p.pending, p.prefixes)
		if err != nil {
			return nil, err
		}
		ev := &RaceEvent{
			Loc:     loc,
			Example: strings.Join(p.pending, "\n"),
			Test:    p.currentTest,
		}
		p.state = stateScanning
		p.pending = nil
		p.stats.Blocks++
		return ev, nil
	}

	return nil, nil
}

// Reset returns the machine to its initial state at a stream boundary.
// An open block is discarded: a block needs both its separators within
// one stream to count. Counters are not reset.
func (p *Parser) Reset() {
	if p.state == stateInBlock {
		p.stats.Discarded++
	}
	p.state = stateScanning
	p.currentTest = ""
	p.pending = nil
}

// Stats reports counters accumulated since the parser was created.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Run drives the parser over a line source, handing each completed race
// event to sink in stream order. The machine resets at file boundaries,
// so an unclosed block never leaks into the next file. Any error aborts
// the run immediately.
func (p *Parser) Run(ctx context.Context, source LineSource, sink EventSink) error {
	currentSource := ""
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading log source: %w", err)
		}

		if line.Source != currentSource {
			if currentSource != "" {
				p.Reset()
			}
			currentSource = line.Source
		}

		ev, err := p.ProcessLine(line.Text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", line.Source, line.Num, err)
		}
		if ev != nil {
			sink.Ingest(ev)
		}
	}

	// Trailing unclosed block, if any, is dropped.
	p.Reset()
	return nil
}
