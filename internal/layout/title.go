package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

type titleAlgorithm struct{}

func (titleAlgorithm) Kind() deck.Kind { return deck.KindTitle }

// Render centers title, subtitle, author and organization on a navy page.
// Only the slide title and subtitle are read; the rest comes from ctx.
func (titleAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	pal := ctx.Palette
	hdr := pal.Header()

	title := page.Slide.Heading()
	if title == "" {
		title = ctx.Title
	}
	subtitle := ctx.Subtitle
	if s, ok := page.Slide.(*deck.TitleSlide); ok && s.Subtitle != "" {
		subtitle = s.Subtitle
	}

	rs := newSlide(page, ctx)
	rs.Title = title
	rs.Background = hdr.Background
	rs.Elements = []Element{
		{Role: RoleBackground, Frame: Rect{W: Units, H: Units}, Fill: hdr.Background},
		{Role: RoleConnector, Frame: Rect{Y: Units - 300, W: Units, H: 300}, Fill: pal.Tone(palette.Teal).Background},
		{
			Role: RoleTitle, Frame: Rect{X: 1000, Y: 2600, W: 8000, H: 1700},
			Text: title, Color: hdr.Foreground, Size: sizeHero, Bold: true, Align: AlignCenter, Middle: true,
		},
	}
	if subtitle != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleSubtitle, Frame: Rect{X: 1000, Y: 4400, W: 8000, H: 800},
			Text: subtitle, Color: pal.Tone(palette.Muted).Background, Size: sizeSubtitle + 400, Align: AlignCenter, Middle: true,
		})
	}
	if ctx.Author != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleMeta, Frame: Rect{X: 1000, Y: 6000, W: 8000, H: 500},
			Text: ctx.Author, Color: hdr.Foreground, Size: sizeSubtitle, Bold: true, Align: AlignCenter, Middle: true,
		})
	}
	if ctx.Organization != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleMeta, Frame: Rect{X: 1000, Y: 6550, W: 8000, H: 500},
			Text: ctx.Organization, Color: pal.Tone(palette.Muted).Background, Size: sizeBody, Align: AlignCenter, Middle: true,
		})
	}
	return rs
}

type questionsAlgorithm struct{}

func (questionsAlgorithm) Kind() deck.Kind { return deck.KindQuestions }

// Render is the closing slide. It always ends with the presenter's name and
// organization, falling back to the document title when neither is known.
func (questionsAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	pal := ctx.Palette

	title := page.Slide.Heading()
	if title == "" {
		title = "Questions?"
	}
	var subtitle, content string
	if s, ok := page.Slide.(*deck.QuestionsSlide); ok {
		subtitle, content = s.Subtitle, s.Content
	}

	rs := newSlide(page, ctx)
	rs.Title = title
	rs.Elements = []Element{{
		Role: RoleTitle, Frame: Rect{X: 1000, Y: 2300, W: 8000, H: 1500},
		Text: title, Color: pal.Header().Background, Size: sizeHero, Bold: true, Align: AlignCenter, Middle: true,
	}}
	if subtitle != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleSubtitle, Frame: Rect{X: 1000, Y: 3900, W: 8000, H: 700},
			Text: subtitle, Color: pal.Tone(palette.Muted).Foreground, Size: sizeSubtitle, Align: AlignCenter, Middle: true,
		})
	}
	if content != "" {
		rs.Elements = append(rs.Elements, Element{
			Role: RoleBody, Frame: Rect{X: 1500, Y: 4700, W: 7000, H: 1500},
			Text: content, Color: pal.Text, Size: sizeBody, Align: AlignCenter,
		})
	}

	who, where := ctx.Author, ctx.Organization
	if who == "" {
		who, where = where, ""
	}
	if who == "" {
		who = ctx.Title
	}
	rs.Elements = append(rs.Elements,
		Element{Role: RoleConnector, Frame: Rect{X: 4400, Y: 6500, W: 1200, H: 40}, Fill: pal.Tone(palette.Teal).Background},
		Element{
			Role: RoleMeta, Frame: Rect{X: 1000, Y: 6750, W: 8000, H: 1000},
			Text: who, Detail: where, Color: pal.Header().Background, Size: sizeSubtitle, Bold: true, Align: AlignCenter, Middle: true,
		},
	)
	return rs
}
