package layout

import (
	"fmt"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Compile paginates and renders the whole document. The result is computed
// once and never changes; callers share it freely.
func Compile(doc *deck.Document, opts Options) (*Deck, error) {
	pages, err := Paginate(doc, opts)
	if err != nil {
		return nil, err
	}

	fingerprint, err := deck.Fingerprint(doc)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	ctx := Context{
		Title:        doc.Title,
		Subtitle:     doc.Subtitle,
		Author:       doc.Author,
		Organization: doc.Organization,
		Palette:      palette.Default(),
	}

	out := &Deck{
		Title:        doc.Title,
		Subtitle:     doc.Subtitle,
		Author:       doc.Author,
		Organization: doc.Organization,
		Fingerprint:  fingerprint,
		Slides:       make([]RenderedSlide, 0, len(pages)),
	}
	for _, page := range pages {
		rs := Resolve(page.Slide).Render(page, ctx)
		rs.Index = len(out.Slides)
		out.Slides = append(out.Slides, rs)
	}
	return out, nil
}
