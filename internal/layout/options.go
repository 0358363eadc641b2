package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Per-slide capacities used when Options leaves them unset.
const (
	DefaultTableRowsPerSlide   = 8
	DefaultColumnItemsPerSlide = 6
)

// Options tunes pagination. Capacities above what a page can show are
// lowered to TableRowCapacity and ColumnItemCapacity.
type Options struct {
	// TableRowsPerSlide is the number of body rows a table slide holds.
	TableRowsPerSlide int
	// ColumnItemsPerSlide is the number of items a two-column or comparison
	// column holds before it continues on the next slide.
	ColumnItemsPerSlide int
}

// DefaultOptions returns the standard capacities.
func DefaultOptions() Options {
	return Options{
		TableRowsPerSlide:   DefaultTableRowsPerSlide,
		ColumnItemsPerSlide: DefaultColumnItemsPerSlide,
	}
}

// withDefaults replaces non-positive capacities with the defaults and
// caps the rest at what a page without a key insight can show.
func (o Options) withDefaults() Options {
	if o.TableRowsPerSlide <= 0 {
		o.TableRowsPerSlide = DefaultTableRowsPerSlide
	}
	if o.ColumnItemsPerSlide <= 0 {
		o.ColumnItemsPerSlide = DefaultColumnItemsPerSlide
	}
	o.TableRowsPerSlide = min(o.TableRowsPerSlide, TableRowCapacity(false))
	o.ColumnItemsPerSlide = min(o.ColumnItemsPerSlide, ColumnItemCapacity(false))
	return o
}

// TableRowCapacity is the most body rows a table page shows under its
// header row. The key insight band takes space from the body.
func TableRowCapacity(withInsight bool) int {
	return fit(bodyFrame(withInsight).H, 0, tableRowMinH) - 1
}

// ColumnItemCapacity is the most items one two-column or comparison column
// shows on a page.
func ColumnItemCapacity(withInsight bool) int {
	_, rest := bodyFrame(withInsight).SplitTop(columnHeaderH, columnHeaderGap)
	return fit(rest.Inset(columnInset).H, columnItemGap, columnItemMinH)
}

// fit is how many bands of at least minH, separated by spacing, stack
// into height h without overflowing.
func fit(h, spacing, minH int) int {
	if h < minH {
		return 0
	}
	return (h + spacing) / (minH + spacing)
}

// Context is the document-level data a renderer may read.
type Context struct {
	Title        string
	Subtitle     string
	Author       string
	Organization string
	Palette      palette.Palette
}
