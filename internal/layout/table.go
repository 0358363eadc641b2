package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Row band heights. The minimum decides TableRowCapacity.
const (
	tableRowMinH = 350
	tableRowMaxH = 650
)

type tableAlgorithm struct{}

func (tableAlgorithm) Kind() deck.Kind { return deck.KindTable }

// Render draws the header row and this page's body rows. The column count
// follows the headers; short rows are padded and extra cells are dropped.
// Without headers the widest row decides.
func (tableAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	pal := ctx.Palette
	s, _ := page.Slide.(*deck.TableSlide)
	if s == nil {
		s = &deck.TableSlide{}
	}
	headers, rows := s.Table.Headers, s.Table.Rows

	ncols := len(headers)
	if ncols == 0 {
		for _, row := range rows {
			ncols = max(ncols, len(row))
		}
	}
	ncols = max(ncols, 1)

	nrows := len(rows)
	if len(headers) > 0 {
		nrows++
	}

	rs.Elements = heading(ctx, rs.Title, "")
	body := bodyFrame(s.KeyInsight != nil)
	columns := body.Columns(ncols, 0)
	bands := stack(body, nrows, 0, tableRowMinH, tableRowMaxH)

	if len(headers) > 0 && len(bands) > 0 {
		hdr := pal.Header()
		for c, col := range columns {
			rs.Elements = append(rs.Elements, Element{
				Role: RoleTableHeader, Frame: Rect{X: col.X, Y: bands[0].Y, W: col.W, H: bands[0].H},
				Text: headers[c], Color: hdr.Foreground, Fill: hdr.Background, Border: pal.Border,
				Size: sizeSmall, Bold: true, Middle: true,
			})
		}
		bands = bands[1:]
	}

	for r, band := range bands {
		fill := palette.White
		if r%2 == 1 {
			fill = pal.Page
		}
		for c, col := range columns {
			var text string
			if c < len(rows[r]) {
				text = rows[r][c]
			}
			rs.Elements = append(rs.Elements, Element{
				Role: RoleTableCell, Frame: Rect{X: col.X, Y: band.Y, W: col.W, H: band.H},
				Text: text, Color: pal.Text, Fill: fill, Border: pal.Border,
				Size: sizeTable, Middle: true,
			})
		}
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}
