package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid       bool                `json:"valid"`
	Diagnostics []loader.Diagnostic `json:"diagnostics,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deck>",
		Short: "Check a deck against the deck schema",
		Long: `Check a deck against the deck schema without producing anything.

Reports fields of the wrong type, unknown layouts, unknown item types and
unknown column colors with their positions. Those decks still compile,
with fallbacks; validate tells you where the fallbacks happen.

Exit codes:
  0 - No diagnostics
  1 - Diagnostics reported
  2 - The deck could not be read or parsed`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)

	src, err := loader.ReadFile(path)
	if err != nil {
		return loadFailure(f, err)
	}
	diags, err := loader.Validate(src)
	if err != nil {
		return loadFailure(f, err)
	}
	f.VerboseLog("Validated %s (%s)", path, src.Format)

	result := ValidationResult{Valid: len(diags) == 0, Diagnostics: diags}
	if f.json() {
		if err := f.Success(result); err != nil {
			return err
		}
	} else if result.Valid {
		f.Printf("✓ %s is valid\n", path)
	} else {
		f.Printf("✗ %d problem(s) in %s\n\n", len(diags), path)
		for _, d := range diags {
			f.Printf("%s\n", d.Error())
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d diagnostic(s)", len(diags)))
	}
	return nil
}
