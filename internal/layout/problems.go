package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

type problemsAlgorithm struct{}

func (problemsAlgorithm) Kind() deck.Kind { return deck.KindProblems }

// Render pairs each problem with its solution, joined by an arrow.
func (problemsAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	pal := ctx.Palette
	s, _ := page.Slide.(*deck.ProblemsSlide)
	if s == nil {
		s = &deck.ProblemsSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	const arrowW = 600
	for i, row := range stack(bodyFrame(s.KeyInsight != nil), len(s.Problems), 150, 500, 1300) {
		p := s.Problems[i]
		half := (row.W - arrowW) / 2
		left := Rect{X: row.X, Y: row.Y, W: half, H: row.H}
		right := Rect{X: row.X + half + arrowW, Y: row.Y, W: half, H: row.H}

		rs.Elements = append(rs.Elements,
			card(ctx, deck.Item{Title: "Problem", Description: p.Problem}, left, deck.SeverityDanger),
			Element{
				Role: RoleConnector, Frame: Rect{X: left.Right(), Y: row.Y, W: arrowW, H: row.H},
				Text: "→", Color: pal.Tone(palette.Teal).Background, Size: sizeTitle, Bold: true,
				Align: AlignCenter, Middle: true,
			},
			card(ctx, deck.Item{Title: "Solution", Description: p.Solution}, right, deck.SeveritySuccess),
		)
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}

type operationsAlgorithm struct{}

func (operationsAlgorithm) Kind() deck.Kind { return deck.KindOperations }

// Render lists numbered operations. A command, when present, sits beside
// its description in a monospace block.
func (operationsAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	pal := ctx.Palette
	s, _ := page.Slide.(*deck.OperationsSlide)
	if s == nil {
		s = &deck.OperationsSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	for i, row := range stack(bodyFrame(s.KeyInsight != nil), len(s.Operations), 150, 600, 1500) {
		op := s.Operations[i]
		rest := afterBadge(row)
		rs.Elements = append(rs.Elements, badge(ctx, i+1, row))

		if op.Command == "" {
			rs.Elements = append(rs.Elements, card(ctx, deck.Item{Title: op.Title, Description: op.Description}, rest, deck.SeverityNone))
			continue
		}
		textW := rest.W * 55 / 100
		rs.Elements = append(rs.Elements,
			card(ctx, deck.Item{Title: op.Title, Description: op.Description},
				Rect{X: rest.X, Y: rest.Y, W: textW, H: rest.H}, deck.SeverityNone),
			Element{
				Role: RoleCommand, Frame: Rect{X: rest.X + textW + 150, Y: rest.Y, W: rest.W - textW - 150, H: rest.H},
				Text: op.Command, Color: palette.White, Fill: pal.Text, Size: sizeTable, Mono: true, Middle: true,
			},
		)
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}
