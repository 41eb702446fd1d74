package parser

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// framePrefix marks a stack-frame line inside a race block: four spaces
// followed by '#'.
const framePrefix = "    #"

// ErrMalformedFrame reports a stack-frame line with fewer than the four
// expected whitespace-separated fields (marker, function, location, rest).
var ErrMalformedFrame = errors.New("malformed stack-frame line")

// ErrBadLineNumber reports a non-numeric line number in a frame's
// path:line:col location token.
var ErrBadLineNumber = errors.New("unparseable line number")

// DeriveLocation scans a block's lines for the first stack frame whose
// function does not match any of the primitive prefixes and returns its
// Location. Returns (nil, nil) when no qualifying frame exists.
//
// A frame line that cannot be split into four fields, or whose line
// number is non-numeric, fails the whole block: silently skipping it
// would hide malformed detector output.
func DeriveLocation(lines []string, primitivePrefixes []string) (*Location, error) {
	for _, line := range lines {
		if !strings.HasPrefix(line, framePrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedFrame, line)
		}
		fn, loc := fields[1], fields[2]

		if isPrimitive(fn, primitivePrefixes) {
			continue
		}

		file, lineno, err := splitFrameLocation(loc)
		if err != nil {
			return nil, err
		}
		return &Location{Func: fn, File: file, Line: lineno}, nil
	}
	return nil, nil
}

func isPrimitive(fn string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(fn, p) {
			return true
		}
	}
	return false
}

// splitFrameLocation splits a path:line:col token into basename and line
// number. Tokens that don't have exactly three parts are treated as a
// bare path with line 0.
func splitFrameLocation(loc string) (string, int, error) {
	parts := strings.Split(loc, ":")
	if len(parts) != 3 {
		return path.Base(loc), 0, nil
	}

	lineno, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q in %q", ErrBadLineNumber, parts[1], loc)
	}
	return path.Base(parts[0]), lineno, nil
}
