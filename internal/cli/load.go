package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/journal"
	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
)

// Position locates a load error in its source file.
type Position struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// loadDeck reads and compiles the document at path. Failures are written
// through f and returned as exit-code-2 errors.
func loadDeck(opts *RootOptions, f *OutputFormatter, path string) (*deck.Document, *layout.Deck, error) {
	doc, err := loader.Load(path)
	if err != nil {
		return nil, nil, loadFailure(f, err)
	}
	d, err := layout.Compile(doc, opts.Config.Layout.Options())
	if err != nil {
		return nil, nil, f.Fail(ExitCommandError, loader.ErrCodeStructure, err.Error(), nil)
	}
	f.VerboseLog("Loaded %s: %d slide(s), %d after pagination", path, len(doc.Slides), d.Len())
	return doc, d, nil
}

func loadFailure(f *OutputFormatter, err error) error {
	var le *loader.LoadError
	if errors.As(err, &le) {
		var details any
		if le.File != "" {
			details = Position{File: le.File, Line: le.Line, Column: le.Column}
		}
		return f.Fail(ExitCommandError, le.Code, le.Error(), details)
	}
	return f.Fail(ExitCommandError, loader.ErrCodeGeneric, err.Error(), nil)
}

// recordExport writes a journal entry when a journal is configured.
// Journal problems are logged, never fatal.
func recordExport(ctx context.Context, opts *RootOptions, d *layout.Deck, source string, size int) {
	if !opts.Config.Journal.Enabled() {
		return
	}
	j, err := journal.Open(opts.Config.Journal.Path)
	if err != nil {
		opts.Logger.Warn("failed to open journal", zap.String("path", opts.Config.Journal.Path), zap.Error(err))
		return
	}
	defer j.Close()

	e, err := j.Record(ctx, journal.Entry{
		Fingerprint: d.Fingerprint,
		Title:       d.Title,
		Source:      source,
		Slides:      d.Len(),
		Bytes:       int64(size),
	})
	if err != nil {
		opts.Logger.Warn("failed to record export", zap.Error(err))
		return
	}
	opts.Logger.Debug("export recorded", zap.String("id", e.ID))
}
