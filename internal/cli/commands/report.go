// Package commands implements the tsan-races subcommands.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpage/cpython-tsan-races/pkg/aggregator"
	"github.com/mpage/cpython-tsan-races/pkg/config"
	"github.com/mpage/cpython-tsan-races/pkg/output"
	"github.com/mpage/cpython-tsan-races/pkg/parser"
)

// ReportOptions holds command-line options for report generation.
type ReportOptions struct {
	Config  string
	Output  string
	Verbose bool
	Quiet   bool
}

// AddReportFlags registers report flags on a command.
func AddReportFlags(cmd *cobra.Command, opts *ReportOptions) {
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Optional YAML config overriding the built-in stream format")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "html", "Output format (html|text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include raw examples in text output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only (text and json output)")
}

// RunReport parses the given race logs and writes a report to stdout.
func RunReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	source, sources, err := openSource(args)
	if err != nil {
		return err
	}
	defer source.Close()

	p := parser.New(
		cfg.Separator,
		cfg.PrimitivePrefixes,
		parser.NewTestExtractor(cfg.TestStatus.CompiledPattern()),
	)
	agg := aggregator.New()

	if err := p.Run(ctx, source, agg); err != nil {
		return fmt.Errorf("parsing races: %w", err)
	}

	report := output.NewReport(agg.Snapshot(), p.Stats(), sources, started)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// loadConfig loads the given config file, or the built-in defaults when
// path is empty.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openSource expands the input arguments into a LineSource.
// Standard input and files cannot be mixed: "-" must be the sole input.
func openSource(args []string) (parser.LineSource, []string, error) {
	paths, err := parser.ExpandInputs(args)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding inputs: %w", err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no input files matched: %v", args)
	}

	if paths[0] == "-" {
		if len(paths) > 1 {
			return nil, nil, fmt.Errorf("cannot mix stdin (-) with file inputs")
		}
		return parser.NewStdinSource(), paths, nil
	}

	return parser.NewFileSource(paths), paths, nil
}

func createFormatter(opts *ReportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "html":
		return output.NewHTMLFormatter(), nil
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use html, text or json)", opts.Output)
	}
}
