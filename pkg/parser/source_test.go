package parser

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func drain(t *testing.T, s LineSource) []*Line {
	t.Helper()
	ctx := context.Background()
	var lines []*Line
	for {
		line, err := s.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestFileSource_Next(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "races.log")
	content := "first\nsecond\nthird\n"
	if err := os.WriteFile(logFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewFileSource([]string{logFile})
	defer source.Close()

	lines := drain(t, source)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Text != "first" || lines[0].Num != 1 || lines[0].Source != logFile {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[2].Text != "third" || lines[2].Num != 3 {
		t.Errorf("third line = %+v", lines[2])
	}
}

func TestFileSource_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, content := range []string{"a1\na2\n", "b1\n"} {
		path := filepath.Join(dir, string(rune('a'+i))+".log")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	source := NewFileSource(paths)
	defer source.Close()

	lines := drain(t, source)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Line numbers restart per file.
	if lines[2].Text != "b1" || lines[2].Num != 1 || lines[2].Source != paths[1] {
		t.Errorf("last line = %+v, want b1 at %s:1", lines[2], paths[1])
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	source := NewFileSource([]string{"/nonexistent/races.log"})
	defer source.Close()

	_, err := source.Next(context.Background())
	if err == nil || err == io.EOF {
		t.Errorf("Next() error = %v, want open failure", err)
	}
}

func TestReaderSource_Next(t *testing.T) {
	source := NewReaderSource(strings.NewReader("one\ntwo"), "-")
	defer source.Close()

	lines := drain(t, source)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1].Text != "two" || lines[1].Source != "-" || lines[1].Num != 2 {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestReaderSource_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewReaderSource(strings.NewReader("one\n"), "-")
	if _, err := source.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}
