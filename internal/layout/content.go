package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

type contentAlgorithm struct{}

func (contentAlgorithm) Kind() deck.Kind { return deck.KindContent }

// Render is the fallback: a heading and free text. It reads nothing but the
// title and content, whatever else the slide declared.
func (contentAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	rs.Kind = deck.KindContent

	var content string
	if s, ok := page.Slide.(*deck.ContentSlide); ok {
		content = s.Content
	}

	rs.Elements = heading(ctx, rs.Title, "")
	if content != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleBody, Frame: bodyFrame(false), Text: content,
			Color: ctx.Palette.Text, Size: sizeSubtitle,
		})
	}
	return rs
}

type architectureAlgorithm struct{}

func (architectureAlgorithm) Kind() deck.Kind { return deck.KindArchitecture }

// Render puts the narrative on the left and the components as a grid of
// boxes on the right. Either half takes the full width when the other is
// empty.
func (architectureAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	s, _ := page.Slide.(*deck.ArchitectureSlide)
	if s == nil {
		s = &deck.ArchitectureSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	body := bodyFrame(s.KeyInsight != nil)
	boxes, cols := body, 3
	if s.Content != "" {
		text := body
		if len(s.Items) > 0 {
			text.W = body.W * 38 / 100
			boxes = Rect{X: text.Right() + 300, Y: body.Y, W: body.W - text.W - 300, H: body.H}
			cols = 2
		}
		rs.Elements = append(rs.Elements, Element{
			Role: RoleBody, Frame: text, Text: s.Content,
			Color: ctx.Palette.Text, Size: sizeBody,
		})
	}
	for i, cell := range grid(boxes, len(s.Items), cols, gap, 700, 1600) {
		box := card(ctx, s.Items[i], cell, deck.SeverityNone)
		box.Border = ctx.Palette.Border
		box.Align = AlignCenter
		rs.Elements = append(rs.Elements, box)
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}
