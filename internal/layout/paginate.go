package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

// ContinuedSuffix marks titles on continuation slides.
const ContinuedSuffix = " (continued)"

// Page is one physical slide before rendering. Slide is the logical slide
// narrowed to this page's share of rows or items.
type Page struct {
	Slide  deck.Slide
	Source int
	Part   int
	Parts  int
}

// Paginate expands the document into physical pages. Tables split by
// TableRowsPerSlide; two-column and comparison slides split when either
// column exceeds ColumnItemsPerSlide. A slide with a key insight splits at
// the smaller capacity of a page carrying the insight band. Every other
// slide is one page.
func Paginate(doc *deck.Document, opts Options) ([]Page, error) {
	if doc == nil {
		return nil, &StructuralError{Index: -1, Message: "document is nil"}
	}
	opts = opts.withDefaults()

	var pages []Page
	for i, s := range doc.Slides {
		if s == nil {
			return nil, &StructuralError{Index: i, Message: "slide is nil"}
		}
		pages = append(pages, expand(s, i, opts)...)
	}
	return pages, nil
}

func expand(s deck.Slide, source int, opts Options) []Page {
	switch v := s.(type) {
	case *deck.TableSlide:
		return expandTable(v, source, min(opts.TableRowsPerSlide, TableRowCapacity(v.KeyInsight != nil)))
	case *deck.TwoColumnSlide:
		return expandColumns(source, v.Left, v.Right, columnCapacity(opts, v.KeyInsight),
			func(left, right deck.Column, first, last bool) deck.Slide {
				cp := *v
				cp.Left, cp.Right = left, right
				narrow(&cp.Base, &cp.KeyInsight, first, last)
				return &cp
			})
	case *deck.ComparisonSlide:
		return expandColumns(source, v.Left, v.Right, columnCapacity(opts, v.KeyInsight),
			func(left, right deck.Column, first, last bool) deck.Slide {
				cp := *v
				cp.Left, cp.Right = left, right
				narrow(&cp.Base, &cp.KeyInsight, first, last)
				return &cp
			})
	default:
		return []Page{{Slide: s, Source: source, Part: 1, Parts: 1}}
	}
}

func columnCapacity(opts Options, ki *deck.KeyInsight) int {
	return min(opts.ColumnItemsPerSlide, ColumnItemCapacity(ki != nil))
}

func expandTable(v *deck.TableSlide, source, capacity int) []Page {
	rows := v.Table.Rows
	parts := ceilDiv(len(rows), capacity)
	if parts == 0 {
		parts = 1
	}

	pages := make([]Page, 0, parts)
	for p := 0; p < parts; p++ {
		lo := p * capacity
		hi := min(lo+capacity, len(rows))
		cp := *v
		cp.Table = deck.Table{Headers: v.Table.Headers, Rows: rows[lo:hi:hi]}
		if p > 0 {
			cp.Title = v.Title + ContinuedSuffix
		}
		narrow(&cp.Base, &cp.KeyInsight, p == 0, p == parts-1)
		pages = append(pages, Page{Slide: &cp, Source: source, Part: p + 1, Parts: parts})
	}
	return pages
}

func expandColumns(source int, left, right deck.Column, capacity int,
	build func(left, right deck.Column, first, last bool) deck.Slide) []Page {
	parts := max(ceilDiv(len(left.Items), capacity), ceilDiv(len(right.Items), capacity), 1)

	pages := make([]Page, 0, parts)
	for p := 0; p < parts; p++ {
		s := build(window(left, p, capacity), window(right, p, capacity), p == 0, p == parts-1)
		pages = append(pages, Page{Slide: s, Source: source, Part: p + 1, Parts: parts})
	}
	return pages
}

// window returns the p-th share of a column. Continuation shares carry the
// suffixed title; a column with nothing left on this page is empty.
func window(c deck.Column, p, capacity int) deck.Column {
	if p == 0 && len(c.Items) <= capacity {
		return c
	}
	lo := p * capacity
	if lo >= len(c.Items) {
		return deck.Column{}
	}
	hi := min(lo+capacity, len(c.Items))
	out := deck.Column{Title: c.Title, Items: c.Items[lo:hi:hi]}
	if p > 0 {
		out.Title = c.Title + ContinuedSuffix
	}
	return out
}

// narrow keeps notes on the first page and the key insight on the last.
func narrow(b *deck.Base, ki **deck.KeyInsight, first, last bool) {
	if !first {
		b.SpeakerNotes = ""
	}
	if !last {
		*ki = nil
	}
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
