package layout

import (
	"strconv"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Page geometry in canvas units.
const (
	margin     = 500
	gap        = 200
	contentW   = Units - 2*margin
	titleTop   = 450
	titleH     = 850
	bodyTop    = 2000
	pageBottom = Units - 450
	insightH   = 1100
	insightTop = pageBottom - insightH
)

// Font sizes in hundredths of a point.
const (
	sizeHero     = 4000
	sizeTitle    = 3000
	sizeSubtitle = 1800
	sizeBody     = 1600
	sizeSmall    = 1300
	sizeTable    = 1200
	sizeInsight  = 1500
)

var (
	titleFrame    = Rect{X: margin, Y: titleTop, W: contentW, H: titleH}
	ruleFrame     = Rect{X: margin, Y: titleTop + titleH + 30, W: 1200, H: 40}
	subtitleFrame = Rect{X: margin, Y: titleTop + titleH + 120, W: contentW, H: 480}
	insightFrame  = Rect{X: margin, Y: insightTop, W: contentW, H: insightH}
)

// bodyFrame is the area below the heading, leaving room for the key
// insight when the page shows one.
func bodyFrame(withInsight bool) Rect {
	bottom := pageBottom
	if withInsight {
		bottom = insightTop - gap
	}
	return Rect{X: margin, Y: bodyTop, W: contentW, H: bottom - bodyTop}
}

func newSlide(page Page, ctx Context) RenderedSlide {
	return RenderedSlide{
		Source:     page.Source,
		Part:       page.Part,
		Parts:      page.Parts,
		Kind:       page.Slide.Kind(),
		Title:      page.Slide.Heading(),
		Background: ctx.Palette.Page,
		Notes:      page.Slide.Notes(),
	}
}

// heading is the title, accent rule and optional subtitle shared by every
// layout except title and questions.
func heading(ctx Context, title, subtitle string) []Element {
	pal := ctx.Palette
	els := []Element{
		{
			Role:   RoleTitle,
			Frame:  titleFrame,
			Text:   title,
			Color:  pal.Header().Background,
			Size:   sizeTitle,
			Bold:   true,
			Align:  AlignLeft,
			Middle: true,
		},
		{
			Role:  RoleConnector,
			Frame: ruleFrame,
			Fill:  pal.Tone(palette.Teal).Background,
		},
	}
	if subtitle != "" {
		els = append(els, Element{
			Role:  RoleSubtitle,
			Frame: subtitleFrame,
			Text:  subtitle,
			Color: pal.Tone(palette.Muted).Foreground,
			Size:  sizeSubtitle,
			Align: AlignLeft,
		})
	}
	return els
}

// insight renders the key-insight callout, identical in every layout.
func insight(ctx Context, ki *deck.KeyInsight) []Element {
	if ki == nil {
		return nil
	}
	pair := ctx.Palette.Insight()
	return []Element{{
		Role:   RoleInsight,
		Frame:  insightFrame,
		Text:   ki.Title,
		Detail: ki.Content,
		Color:  pair.Foreground,
		Fill:   pair.Background,
		Border: pair.Foreground,
		Size:   sizeInsight,
		Bold:   true,
		Middle: true,
	}}
}

// stack lays out up to n rows top to bottom. Rows shrink toward minH as n
// grows; rows that still do not fit are dropped.
func stack(frame Rect, n, spacing, minH, maxH int) []Rect {
	if n <= 0 {
		return nil
	}
	h := (frame.H - spacing*(n-1)) / n
	h = max(min(h, maxH), minH)

	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		y := frame.Y + i*(h+spacing)
		if y+h > frame.Bottom() {
			break
		}
		out = append(out, Rect{X: frame.X, Y: y, W: frame.W, H: h})
	}
	return out
}

// grid lays out n cells row by row in cols columns.
func grid(frame Rect, n, cols, spacing, minH, maxH int) []Rect {
	if n <= 0 || cols <= 0 {
		return nil
	}
	columns := frame.Columns(cols, spacing)
	rows := stack(frame, ceilDiv(n, cols), spacing, minH, maxH)

	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		r := i / cols
		if r >= len(rows) {
			break
		}
		c := columns[i%cols]
		out = append(out, Rect{X: c.X, Y: rows[r].Y, W: c.W, H: rows[r].H})
	}
	return out
}

// card renders a severity-colored item. Untyped items take the fallback
// severity.
func card(ctx Context, item deck.Item, frame Rect, fallback deck.Severity) Element {
	sev := item.Type
	if sev == deck.SeverityNone {
		sev = fallback
	}
	pair := ctx.Palette.Severity(sev)
	return Element{
		Role:     RoleItem,
		Frame:    frame,
		Text:     item.Title,
		Detail:   item.Description,
		Color:    pair.Foreground,
		Fill:     pair.Background,
		Size:     sizeBody,
		Bold:     true,
		Middle:   true,
		Severity: sev,
	}
}

// badge is a small numbered marker at the left edge of a row.
func badge(ctx Context, n int, row Rect) Element {
	pair := ctx.Palette.Tone(palette.Teal)
	return Element{
		Role:   RoleBadge,
		Frame:  Rect{X: row.X, Y: row.Y, W: 450, H: row.H},
		Text:   strconv.Itoa(n),
		Color:  pair.Foreground,
		Fill:   pair.Background,
		Size:   sizeBody,
		Bold:   true,
		Align:  AlignCenter,
		Middle: true,
	}
}

// afterBadge is the part of a row to the right of its badge.
func afterBadge(row Rect) Rect {
	return Rect{X: row.X + 450 + 150, Y: row.Y, W: row.W - 600, H: row.H}
}
