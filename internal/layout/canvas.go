package layout

import (
	"fmt"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Units is the extent of the canvas on each axis. X runs across the 16:9
// width and Y down the height, each from 0 to Units.
const Units = 10000

// Rect is a frame in canvas units.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks the frame by d on every side.
func (r Rect) Inset(d int) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Columns splits the frame into n equal-width columns separated by gap.
// Any remainder is left unused so every column has the same width.
func (r Rect) Columns(n, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	w := (r.W - gap*(n-1)) / n
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: r.X + i*(w+gap), Y: r.Y, W: w, H: r.H}
	}
	return out
}

// SplitTop returns a band of height h at the top and the remainder below
// it, separated by gap.
func (r Rect) SplitTop(h, gap int) (top, rest Rect) {
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	rest = Rect{X: r.X, Y: r.Y + h + gap, W: r.W, H: r.H - h - gap}
	if rest.H < 0 {
		rest.H = 0
	}
	return top, rest
}

// Role says what an element is for. Viewers use it to style text; the
// producer uses it to name shapes.
type Role string

const (
	RoleBackground   Role = "background"
	RoleTitle        Role = "title"
	RoleSubtitle     Role = "subtitle"
	RoleBody         Role = "body"
	RoleItem         Role = "item"
	RoleBadge        Role = "badge"
	RoleColumn       Role = "column"
	RoleColumnHeader Role = "column-header"
	RoleTableHeader  Role = "table-header"
	RoleTableCell    Role = "table-cell"
	RoleCommand      Role = "command"
	RoleConnector    Role = "connector"
	RoleInsight      Role = "insight"
	RoleMeta         Role = "meta"
)

// Align is horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Element is one positioned shape. Text and Detail are rendered as two
// paragraphs; Detail is never bold. Size is in hundredths of a point.
type Element struct {
	Role     Role          `json:"role"`
	Frame    Rect          `json:"frame"`
	Text     string        `json:"text,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Color    palette.Color `json:"color,omitempty"`
	Fill     palette.Color `json:"fill,omitempty"`
	Border   palette.Color `json:"border,omitempty"`
	Size     int           `json:"size,omitempty"`
	Bold     bool          `json:"bold,omitempty"`
	Mono     bool          `json:"mono,omitempty"`
	Align    Align         `json:"align,omitempty"`
	Middle   bool          `json:"middle,omitempty"`
	Severity deck.Severity `json:"severity,omitempty"`
}

// RenderedSlide is one physical slide. Notes is the out-of-band notes
// channel and never appears among Elements.
type RenderedSlide struct {
	Index      int           `json:"index"`
	Source     int           `json:"source"`
	Part       int           `json:"part"`
	Parts      int           `json:"parts"`
	Kind       deck.Kind     `json:"kind"`
	Title      string        `json:"title,omitempty"`
	Background palette.Color `json:"background"`
	Elements   []Element     `json:"elements,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}

// Text returns every visible string on the slide in element order.
func (s RenderedSlide) Text() []string {
	var out []string
	for _, e := range s.Elements {
		if e.Text != "" {
			out = append(out, e.Text)
		}
		if e.Detail != "" {
			out = append(out, e.Detail)
		}
	}
	return out
}

// ElementsWith returns the elements that have the given role.
func (s RenderedSlide) ElementsWith(role Role) []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// Deck is a compiled document: every physical slide, rendered once.
type Deck struct {
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle,omitempty"`
	Author       string          `json:"author,omitempty"`
	Organization string          `json:"organization,omitempty"`
	Fingerprint  string          `json:"fingerprint"`
	Slides       []RenderedSlide `json:"slides,omitempty"`
}

// Len is the post-expansion slide count.
func (d *Deck) Len() int { return len(d.Slides) }

// Snapshot is the canonical JSON form of the deck, suitable for golden
// files and hashing.
func (d *Deck) Snapshot() ([]byte, error) {
	return deck.MarshalCanonical(d)
}

// RenderHash identifies the rendered output. Unlike the fingerprint it
// changes when pagination capacities or layout geometry change.
func (d *Deck) RenderHash() (string, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return "", fmt.Errorf("RenderHash: %w", err)
	}
	return deck.HashWithDomain(deck.DomainRender, snap), nil
}
