// Package cli provides the command-line interface for tsan-races.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpage/cpython-tsan-races/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
// Running the root command itself generates a report, so the common
// invocation stays `tsan-races <races-file>`.
func NewRootCommand() *cobra.Command {
	reportOpts := &commands.ReportOptions{}

	rootCmd := &cobra.Command{
		Use:   "tsan-races [flags] <races-file>...",
		Short: "Group ThreadSanitizer race reports from CPython test logs",
		Long: `tsan-races reads the log stream of a CPython test run under
ThreadSanitizer, extracts the race report blocks, groups them by their
first non-primitive stack frame, and renders a report sorted by how
often each distinct race was observed.

Pass one or more log files or glob patterns, or the literal "-" to read
from standard input. The default output is a self-contained HTML
document on stdout.

Exit codes:
  0 - Report generated
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunReport(cmd, args, reportOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddReportFlags(rootCmd, reportOpts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
