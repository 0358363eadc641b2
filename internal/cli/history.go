package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hapi-suta/runbookforge-sub002/internal/journal"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit       int
	Fingerprint string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent exports from the journal",
		Long: `List recent exports recorded in the journal, newest first.

The journal lives at journal.path in the config file, or
DECKC_JOURNAL_PATH. Only metadata is kept, never the packages.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum entries (0 for all)")
	cmd.Flags().StringVar(&opts.Fingerprint, "fingerprint", "", "only exports of this document")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)

	if !opts.Config.Journal.Enabled() {
		return f.Fail(ExitCommandError, loader.ErrCodeNotFound, "no journal configured (set journal.path)", nil)
	}
	j, err := journal.Open(opts.Config.Journal.Path)
	if err != nil {
		return f.Fail(ExitCommandError, loader.ErrCodeReadFailed, err.Error(), nil)
	}
	defer j.Close()

	var entries []journal.Entry
	if opts.Fingerprint != "" {
		entries, err = j.ByFingerprint(cmd.Context(), opts.Fingerprint)
		if err == nil && opts.Limit > 0 && len(entries) > opts.Limit {
			entries = entries[:opts.Limit]
		}
	} else {
		entries, err = j.List(cmd.Context(), opts.Limit)
	}
	if err != nil {
		return f.Fail(ExitCommandError, loader.ErrCodeReadFailed, err.Error(), nil)
	}

	if f.json() {
		if entries == nil {
			entries = []journal.Entry{}
		}
		return f.Success(entries)
	}
	if len(entries) == 0 {
		f.Printf("No exports recorded.\n")
		return nil
	}
	for _, e := range entries {
		f.Printf("%s  %3d slide(s)  %8d bytes  %s  %s\n",
			e.CreatedAt.Format(time.RFC3339), e.Slides, e.Bytes, shortFingerprint(e.Fingerprint), e.Title)
	}
	return nil
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
