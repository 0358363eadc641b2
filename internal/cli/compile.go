package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
	"github.com/hapi-suta/runbookforge-sub002/internal/pptx"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string
}

// CompileSummary is the result of a compile run.
type CompileSummary struct {
	Source      string `json:"source"`
	Output      string `json:"output"`
	Title       string `json:"title"`
	Fingerprint string `json:"fingerprint"`
	Slides      int    `json:"slides"`
	Bytes       int    `json:"bytes"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <deck>",
		Short: "Compile a deck into a .pptx package",
		Long: `Compile a JSON, YAML or CUE deck into a PowerPoint package.

Tables and long columns are split across continuation slides. Speaker
notes go to the notes pages. Without --output the package is written next
to the deck with a .pptx extension.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)
	start := time.Now()

	_, d, err := loadDeck(opts.RootOptions, f, path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pptx.Write(&buf, d); err != nil {
		opts.Logger.Error("failed to generate presentation", zap.String("source", path), zap.Error(err))
		return f.Fail(ExitCommandError, loader.ErrCodeGeneric, "failed to generate presentation: "+err.Error(), nil)
	}

	out := opts.Output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".pptx"
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return f.Fail(ExitCommandError, loader.ErrCodeGeneric, fmt.Sprintf("writing output file: %v", err), nil)
	}

	opts.Logger.Info("presentation compiled",
		zap.String("source", path),
		zap.String("output", out),
		zap.String("fingerprint", d.Fingerprint),
		zap.Int("slides", d.Len()),
		zap.Int("bytes", buf.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	recordExport(cmd.Context(), opts.RootOptions, d, path, buf.Len())

	summary := CompileSummary{
		Source:      path,
		Output:      out,
		Title:       d.Title,
		Fingerprint: d.Fingerprint,
		Slides:      d.Len(),
		Bytes:       buf.Len(),
	}
	if f.json() {
		return f.Success(summary)
	}
	f.Printf("✓ Compiled %q: %d slide(s)\n", summary.Title, summary.Slides)
	f.Printf("Wrote %s (%d bytes)\n", out, summary.Bytes)
	return nil
}
