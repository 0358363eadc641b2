package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Column geometry. The item minimum decides ColumnItemCapacity.
const (
	columnHeaderH   = 600
	columnHeaderGap = 150
	columnInset     = 100
	columnItemGap   = 120
	columnItemMinH  = 450
	columnItemMaxH  = 850
)

// columnsAlgorithm renders both two-column and comparison slides. The
// shapes match; only the tinting differs. Comparison reads left as before
// (danger) and right as after (success).
type columnsAlgorithm struct {
	kind deck.Kind
}

func (a columnsAlgorithm) Kind() deck.Kind { return a.kind }

func (a columnsAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	pal := ctx.Palette

	var left, right deck.Column
	var ki *deck.KeyInsight
	switch s := page.Slide.(type) {
	case *deck.TwoColumnSlide:
		left, right, ki = s.Left, s.Right, s.KeyInsight
	case *deck.ComparisonSlide:
		left, right, ki = s.Left, s.Right, s.KeyInsight
	}

	headers := [2]palette.Pair{pal.Tone(palette.Slate), pal.Tone(palette.Teal)}
	tints := [2]deck.Severity{deck.SeverityNone, deck.SeverityNone}
	if a.kind == deck.KindComparison {
		headers = [2]palette.Pair{pal.Severity(deck.SeverityDanger), pal.Severity(deck.SeveritySuccess)}
		tints = [2]deck.Severity{deck.SeverityDanger, deck.SeveritySuccess}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	regions := bodyFrame(ki != nil).Columns(2, 400)
	for i, col := range [2]deck.Column{left, right} {
		region := regions[i]
		rs.Elements = append(rs.Elements, Element{Role: RoleColumn, Frame: region, Border: pal.Border})
		if col.Title == "" && len(col.Items) == 0 {
			continue
		}

		top, rest := region.SplitTop(columnHeaderH, columnHeaderGap)
		rs.Elements = append(rs.Elements, Element{
			Role: RoleColumnHeader, Frame: top, Text: col.Title,
			Color: headers[i].Foreground, Fill: headers[i].Background,
			Size: sizeBody, Bold: true, Middle: true,
		})
		for j, row := range stack(rest.Inset(columnInset), len(col.Items), columnItemGap, columnItemMinH, columnItemMaxH) {
			rs.Elements = append(rs.Elements, card(ctx, col.Items[j], row, tints[i]))
		}
	}
	rs.Elements = append(rs.Elements, insight(ctx, ki)...)
	return rs
}

type threeColumnAlgorithm struct{}

func (threeColumnAlgorithm) Kind() deck.Kind { return deck.KindThreeColumn }

// Render always allocates three equal regions. Columns beyond the third
// are not shown; missing columns leave their region empty.
func (threeColumnAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	pal := ctx.Palette
	s, _ := page.Slide.(*deck.ThreeColumnSlide)
	if s == nil {
		s = &deck.ThreeColumnSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	for i, region := range bodyFrame(s.KeyInsight != nil).Columns(3, 300) {
		rs.Elements = append(rs.Elements, Element{Role: RoleColumn, Frame: region, Border: pal.Border})
		if i >= len(s.Columns) {
			continue
		}
		col := s.Columns[i]
		accent := pal.ColumnAccent(i, col.Color)

		top, rest := region.SplitTop(columnHeaderH, columnHeaderGap)
		rs.Elements = append(rs.Elements, Element{
			Role: RoleColumnHeader, Frame: top, Text: col.Title,
			Color: accent.Foreground, Fill: accent.Background,
			Size: sizeBody, Bold: true, Align: AlignCenter, Middle: true,
		})
		for j, row := range stack(rest.Inset(columnInset), len(col.Items), 100, 400, 700) {
			rs.Elements = append(rs.Elements, Element{
				Role: RoleItem, Frame: row, Text: col.Items[j],
				Color: pal.Text, Size: sizeSmall + 100, Middle: true,
			})
		}
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}
