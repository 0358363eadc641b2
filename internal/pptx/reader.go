package pptx

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"
)

// Summary is what Inspect recovers from a package.
type Summary struct {
	Title      string
	Subject    string
	Creator    string
	Identifier string
	Created    time.Time
	Width      int64
	Height     int64
	Slides     []SlideSummary
}

// SlideSummary describes one slide in presentation order.
type SlideSummary struct {
	Number int
	Shapes []ShapeSummary
	Notes  string
}

// ShapeSummary is one text shape's name, text and geometry. Text joins
// paragraphs with newlines; TextColor is the color of the first run.
type ShapeSummary struct {
	Name      string
	Text      string
	TextColor string
	X, Y      int64
	W, H      int64
}

// Text returns the non-empty text of every shape on the slide.
func (s SlideSummary) Text() []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.Text != "" {
			out = append(out, sh.Text)
		}
	}
	return out
}

// Open reads a package from disk.
func Open(filename string) (*Summary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Inspect(data)
}

// Inspect parses a package held in memory.
func Inspect(data []byte) (*Summary, error) {
	p, err := ppt.ReadFrom(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading presentation: %w", err)
	}

	props := p.GetDocumentProperties()
	sum := &Summary{
		Title:      props.Title,
		Subject:    props.Subject,
		Creator:    props.Creator,
		Identifier: props.Keywords,
		Created:    props.Created,
		Width:      p.GetLayout().CX,
		Height:     p.GetLayout().CY,
	}
	for i, slide := range p.Slides() {
		ss := SlideSummary{Number: i + 1, Notes: slide.GetNotes()}
		for _, shape := range slide.GetShapes() {
			if rt, ok := shape.(*ppt.RichTextShape); ok {
				ss.Shapes = append(ss.Shapes, shapeSummary(rt))
			}
		}
		sum.Slides = append(sum.Slides, ss)
	}
	return sum, nil
}

func shapeSummary(rt *ppt.RichTextShape) ShapeSummary {
	sh := ShapeSummary{
		Name: rt.GetName(),
		X:    rt.GetOffsetX(),
		Y:    rt.GetOffsetY(),
		W:    rt.GetWidth(),
		H:    rt.GetHeight(),
	}
	lines := make([]string, 0, len(rt.GetParagraphs()))
	for _, para := range rt.GetParagraphs() {
		var b strings.Builder
		for _, el := range para.GetElements() {
			run, ok := el.(*ppt.TextRun)
			if !ok {
				continue
			}
			b.WriteString(run.GetText())
			if f := run.GetFont(); sh.TextColor == "" && f != nil && len(f.Color.ARGB) == 8 {
				sh.TextColor = f.Color.ARGB[2:]
			}
		}
		lines = append(lines, b.String())
	}
	sh.Text = strings.TrimRight(strings.Join(lines, "\n"), "\n")
	return sh
}
