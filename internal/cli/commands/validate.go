package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpage/cpython-tsan-races/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a tsan-races configuration file without reading any logs.

Checks:
  - YAML syntax
  - Separator and primitive prefix presence
  - Test-status regex validity (including its capture group)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Separator:           %q\n", cfg.Separator)
	fmt.Printf("  Primitive prefixes:  %d\n", len(cfg.PrimitivePrefixes))
	for _, p := range cfg.PrimitivePrefixes {
		fmt.Printf("    - %s\n", p)
	}
	fmt.Printf("  Test-status pattern: %s\n", cfg.TestStatus.Pattern)

	return nil
}
