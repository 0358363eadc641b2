// Package palette is the fixed color table shared by every renderer. Layout
// renderers resolve colors here and copy them onto rendered elements, so the
// PPTX producer and the viewers never pick colors on their own.
package palette

import (
	"fmt"
	"strings"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

// Color is an sRGB value written as six uppercase hex digits, the form
// DrawingML's srgbClr expects.
type Color string

// Hex returns the CSS form, "#RRGGBB".
func (c Color) Hex() string { return "#" + string(c) }

// Pair is a foreground on a background.
type Pair struct {
	Foreground Color
	Background Color
}

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.Foreground, p.Background)
}

// Token names a structural tone.
type Token string

const (
	Navy  Token = "navy"
	Teal  Token = "teal"
	Slate Token = "slate"
	Muted Token = "muted"
)

// Tokens lists the structural tones in column order.
var Tokens = []Token{Navy, Teal, Slate, Muted}

const (
	White Color = "FFFFFF"
	Ink   Color = "1F2937"
	Paper Color = "F8FAFC"
	Rule  Color = "CBD5E1"
)

// Palette maps semantic names to colors. The zero value is not usable; call
// Default.
type Palette struct {
	tones      map[Token]Pair
	severities map[deck.Severity]Pair

	// Text is the body text color on the page background.
	Text Color
	// Page is the slide background.
	Page Color
	// Border outlines cards and table cells.
	Border Color
}

var standard = Palette{
	tones: map[Token]Pair{
		Navy:  {Foreground: White, Background: "1E3A5F"},
		Teal:  {Foreground: White, Background: "0D9488"},
		Slate: {Foreground: White, Background: "475569"},
		Muted: {Foreground: "64748B", Background: "F1F5F9"},
	},
	severities: map[deck.Severity]Pair{
		deck.SeveritySuccess: {Foreground: "166534", Background: "DCFCE7"},
		deck.SeverityWarning: {Foreground: "92400E", Background: "FEF3C7"},
		deck.SeverityDanger:  {Foreground: "991B1B", Background: "FEE2E2"},
		deck.SeverityInfo:    {Foreground: "1E40AF", Background: "DBEAFE"},
		deck.SeverityNone:    {Foreground: Ink, Background: "F1F5F9"},
	},
	Text:   Ink,
	Page:   Paper,
	Border: Rule,
}

// Default returns the palette. Every call returns an equal value.
func Default() Palette { return standard }

// Severity returns the pair for a severity. The mapping is total: unknown
// values get the same pair as SeverityNone.
func (p Palette) Severity(s deck.Severity) Pair {
	if pair, ok := p.severities[s]; ok {
		return pair
	}
	return p.severities[deck.SeverityNone]
}

// Tone returns the pair for a structural token, falling back to Slate.
func (p Palette) Tone(t Token) Pair {
	if pair, ok := p.tones[t]; ok {
		return pair
	}
	return p.tones[Slate]
}

// Named resolves a token or severity name, case-insensitively.
func (p Palette) Named(name string) (Pair, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if pair, ok := p.tones[Token(name)]; ok {
		return pair, true
	}
	if sev := deck.ParseSeverity(name); sev != deck.SeverityNone {
		return p.severities[sev], true
	}
	return Pair{}, false
}

// Header is the fixed style of title bars and table header rows.
func (p Palette) Header() Pair { return p.Tone(Navy) }

// Insight is the key-insight callout style.
func (p Palette) Insight() Pair { return p.Severity(deck.SeverityInfo) }

// ColumnAccent picks the header pair for the i-th column of a multi-column
// layout. An explicit color name wins; otherwise tones rotate navy, teal,
// slate.
func (p Palette) ColumnAccent(i int, name string) Pair {
	if pair, ok := p.Named(name); ok {
		return pair
	}
	rotation := []Token{Navy, Teal, Slate}
	return p.Tone(rotation[i%len(rotation)])
}
