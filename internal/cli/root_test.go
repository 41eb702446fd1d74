package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	want := map[string]bool{"inspect": false, "validate": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "output", "verbose", "quiet"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing root flag %q", flag)
		}
	}
}

func TestRootCommand_GeneratesHTMLReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "races.log")
	content := strings.Join([]string{
		"0:01:23 load avg: 1.05 [ 1/478] test_threading",
		"==================",
		"    # func1 file1.c:10:5 ...",
		"==================",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("root command did not emit HTML by default")
	}
	if !strings.Contains(out, "func1") || !strings.Contains(out, "test_threading") {
		t.Error("report missing race data")
	}
}

func TestRootCommand_RequiresInput(t *testing.T) {
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error with no arguments")
	}
}
