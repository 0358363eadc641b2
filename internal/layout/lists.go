package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

type agendaAlgorithm struct{}

func (agendaAlgorithm) Kind() deck.Kind { return deck.KindAgenda }

// Render numbers each agenda item down the page.
func (agendaAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	var subtitle string
	var items []deck.Item
	if s, ok := page.Slide.(*deck.AgendaSlide); ok {
		subtitle, items = s.Subtitle, s.Items
	}

	rs.Elements = heading(ctx, rs.Title, subtitle)
	for i, row := range stack(bodyFrame(false), len(items), 150, 450, 900) {
		rs.Elements = append(rs.Elements,
			badge(ctx, i+1, row),
			card(ctx, items[i], afterBadge(row), deck.SeverityNone),
		)
	}
	return rs
}

type painPointsAlgorithm struct{}

func (painPointsAlgorithm) Kind() deck.Kind { return deck.KindPainPoints }

// Render lays pain points out as cards, two per row once there are more
// than three. Untyped points read as warnings.
func (painPointsAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	s, _ := page.Slide.(*deck.PainPointsSlide)
	if s == nil {
		s = &deck.PainPointsSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, s.Subtitle)
	cols := 1
	if len(s.Items) > 3 {
		cols = 2
	}
	for i, cell := range grid(bodyFrame(s.KeyInsight != nil), len(s.Items), cols, gap, 600, 1400) {
		rs.Elements = append(rs.Elements, card(ctx, s.Items[i], cell, deck.SeverityWarning))
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}

type takeawaysAlgorithm struct{}

func (takeawaysAlgorithm) Kind() deck.Kind { return deck.KindTakeaways }

// Render lists numbered takeaways. Untyped takeaways read as successes.
func (takeawaysAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	s, _ := page.Slide.(*deck.TakeawaysSlide)
	if s == nil {
		s = &deck.TakeawaysSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	for i, row := range stack(bodyFrame(s.KeyInsight != nil), len(s.Items), 150, 450, 1000) {
		rs.Elements = append(rs.Elements,
			badge(ctx, i+1, row),
			card(ctx, s.Items[i], afterBadge(row), deck.SeveritySuccess),
		)
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}

type monitoringAlgorithm struct{}

func (monitoringAlgorithm) Kind() deck.Kind { return deck.KindMonitoring }

// Render shows each signal as a tile in a three-wide grid.
func (monitoringAlgorithm) Render(page Page, ctx Context) RenderedSlide {
	rs := newSlide(page, ctx)
	s, _ := page.Slide.(*deck.MonitoringSlide)
	if s == nil {
		s = &deck.MonitoringSlide{}
	}

	rs.Elements = heading(ctx, rs.Title, "")
	for i, cell := range grid(bodyFrame(s.KeyInsight != nil), len(s.Items), 3, gap, 900, 2200) {
		tile := card(ctx, s.Items[i], cell, deck.SeverityInfo)
		tile.Align = AlignCenter
		rs.Elements = append(rs.Elements, tile)
	}
	rs.Elements = append(rs.Elements, insight(ctx, s.KeyInsight)...)
	return rs
}
