package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/width"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

type cell struct {
	r    rune
	fg   palette.Color
	bg   palette.Color
	bold bool
	// wide marks the right half of a double-width rune.
	wide bool
}

// Screen is a slide composited onto a grid of character cells.
type Screen struct {
	Width  int
	Height int
	cells  []cell
}

// Composite draws the visible elements of rs onto a cols x rows grid.
// Frames scale from canvas units to cells; text wraps inside its frame and
// is clipped when it does not fit.
func Composite(rs layout.RenderedSlide, cols, rows int) *Screen {
	s := &Screen{Width: max(cols, 0), Height: max(rows, 0)}
	bg := rs.Background
	if bg == "" {
		bg = palette.White
	}
	s.cells = make([]cell, s.Width*s.Height)
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', fg: palette.Ink, bg: bg}
	}
	for _, e := range rs.Elements {
		s.draw(e)
	}
	return s
}

// At returns the rune and colors of one cell.
func (s *Screen) At(x, y int) (r rune, fg, bg palette.Color) {
	c := s.cells[y*s.Width+x]
	return c.r, c.fg, c.bg
}

// Plain returns the grid as text without styling, trailing blanks trimmed.
func (s *Screen) Plain() string {
	lines := make([]string, s.Height)
	for y := range lines {
		var b strings.Builder
		for _, c := range s.row(y) {
			if !c.wide {
				b.WriteRune(c.r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the grid with palette colors applied.
func (s *Screen) Render() string {
	type key struct {
		fg, bg palette.Color
		bold   bool
	}
	styles := map[key]lipgloss.Style{}
	style := func(k key) lipgloss.Style {
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(k.fg.Hex())).
				Background(lipgloss.Color(k.bg.Hex())).
				Bold(k.bold)
			styles[k] = st
		}
		return st
	}

	lines := make([]string, s.Height)
	for y := range lines {
		var line, run strings.Builder
		var cur key
		for i, c := range s.row(y) {
			if c.wide {
				continue
			}
			k := key{c.fg, c.bg, c.bold}
			if i > 0 && k != cur {
				line.WriteString(style(cur).Render(run.String()))
				run.Reset()
			}
			cur = k
			run.WriteRune(c.r)
		}
		if run.Len() > 0 {
			line.WriteString(style(cur).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) row(y int) []cell {
	return s.cells[y*s.Width : (y+1)*s.Width]
}

// box maps a frame to cell bounds. A frame with any extent covers at least
// one cell.
func (s *Screen) box(f layout.Rect) (x0, y0, x1, y1 int) {
	x0 = f.X * s.Width / layout.Units
	x1 = f.Right() * s.Width / layout.Units
	y0 = f.Y * s.Height / layout.Units
	y1 = f.Bottom() * s.Height / layout.Units
	if f.W > 0 && x1 == x0 {
		x1++
	}
	if f.H > 0 && y1 == y0 {
		y1++
	}
	clamp := func(v, hi int) int { return min(max(v, 0), hi) }
	return clamp(x0, s.Width), clamp(y0, s.Height), clamp(x1, s.Width), clamp(y1, s.Height)
}

func (s *Screen) draw(e layout.Element) {
	x0, y0, x1, y1 := s.box(e.Frame)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if e.Fill != "" {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				s.cells[y*s.Width+x] = cell{r: ' ', fg: palette.Ink, bg: e.Fill}
			}
		}
	}

	text := paragraphs(e)
	if len(text) == 0 {
		return
	}
	if (e.Fill != "" || e.Border != "") && x1-x0 > 2 {
		x0++
		x1--
	}
	lines := wrap(text, x1-x0)
	if len(lines) > y1-y0 {
		lines = lines[:y1-y0]
	}
	top := y0
	if e.Middle {
		top += (y1 - y0 - len(lines)) / 2
	}
	fg := e.Color
	if fg == "" {
		fg = palette.Ink
	}
	for i, line := range lines {
		x := x0
		switch e.Align {
		case layout.AlignCenter:
			x += (x1 - x0 - stringWidth(line)) / 2
		case layout.AlignRight:
			x = x1 - stringWidth(line)
		}
		s.put(x, top+i, x1, line, fg, e.Bold)
	}
}

// put writes text on row y from column x, stopping before limit.
func (s *Screen) put(x, y, limit int, text string, fg palette.Color, bold bool) {
	for _, r := range text {
		w := runeWidth(r)
		if x+w > limit {
			return
		}
		i := y*s.Width + x
		s.cells[i].r, s.cells[i].fg, s.cells[i].bold, s.cells[i].wide = r, fg, bold, false
		if w == 2 {
			s.cells[i+1] = cell{r: ' ', fg: fg, bg: s.cells[i].bg, bold: bold, wide: true}
		}
		x += w
	}
}

func paragraphs(e layout.Element) []string {
	var out []string
	if e.Text != "" {
		out = append(out, strings.Split(e.Text, "\n")...)
	}
	if e.Detail != "" {
		out = append(out, strings.Split(e.Detail, "\n")...)
	}
	return out
}

// wrap breaks each paragraph into lines no wider than w cells. Words
// longer than a line are split.
func wrap(paras []string, w int) []string {
	if w <= 0 {
		return nil
	}
	var out []string
	for _, p := range paras {
		words := strings.Fields(strings.ReplaceAll(p, "\t", " "))
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line string
		for _, word := range words {
			for stringWidth(word) > w {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				head, rest := cut(word, w)
				out = append(out, head)
				word = rest
			}
			switch {
			case line == "":
				line = word
			case stringWidth(line)+1+stringWidth(word) <= w:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// cut splits s after at most w cells.
func cut(s string, w int) (head, rest string) {
	n := 0
	for i, r := range s {
		rw := runeWidth(r)
		if n+rw > w {
			if i == 0 {
				// a double-width rune in a one-cell line
				return "", ""
			}
			return s[:i], s[i:]
		}
		n += rw
	}
	return s, ""
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func stringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}
