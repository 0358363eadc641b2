package pptx

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

const (
	fontBody = "Calibri"
	fontMono = "Consolas"

	lineWidth = 12700
)

// emuX and emuY map canvas units to EMU on each axis.
func emuX(v int) int64 { return int64(v) * SlideWidth / layout.Units }
func emuY(v int) int64 { return int64(v) * SlideHeight / layout.Units }

func solidFill(c palette.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(string(c)))
}

var alignments = map[layout.Align]ppt.HorizontalAlignment{
	layout.AlignCenter: ppt.HorizontalCenter,
	layout.AlignRight:  ppt.HorizontalRight,
}

// fillSlide adds one text shape per element. Notes go to the notes page
// and never into the shape tree.
func fillSlide(slide *ppt.Slide, s layout.RenderedSlide) error {
	if s.Background != "" {
		slide.SetBackground(solidFill(s.Background))
	}
	for i, e := range s.Elements {
		if err := addShape(slide, i+2, e); err != nil {
			return fmt.Errorf("element %d (%s): %w", i, e.Role, err)
		}
	}
	if s.Notes != "" {
		slide.SetNotes(s.Notes)
	}
	return nil
}

func addShape(slide *ppt.Slide, id int, e layout.Element) error {
	if e.Frame.W < 0 || e.Frame.H < 0 {
		return fmt.Errorf("negative extent %dx%d", e.Frame.W, e.Frame.H)
	}

	sh := slide.CreateRichTextShape()
	sh.SetName(fmt.Sprintf("%s %d", e.Role, id))
	sh.SetOffsetX(emuX(e.Frame.X)).SetOffsetY(emuY(e.Frame.Y))
	sh.SetWidth(emuX(e.Frame.W)).SetHeight(emuY(e.Frame.H))
	if e.Fill != "" {
		sh.SetFill(solidFill(e.Fill))
	}
	if e.Border != "" {
		sh.SetBorder(ppt.NewBorder().SetSolidFill(ppt.NewColor(string(e.Border))).SetWidth(lineWidth))
	}
	if e.Middle {
		sh.SetTextAnchor(ppt.TextAnchorMiddle)
	} else {
		sh.SetTextAnchor(ppt.TextAnchorTop)
	}

	first := true
	if e.Text != "" {
		addParagraphs(sh, &first, e.Text, e, e.Bold, e.Size)
	}
	if e.Detail != "" {
		addParagraphs(sh, &first, e.Detail, e, false, e.Size*85/100)
	}
	return nil
}

// addParagraphs writes one paragraph per line. The shape starts with an
// empty paragraph, which takes the first line.
func addParagraphs(sh *ppt.RichTextShape, first *bool, text string, e layout.Element, bold bool, size int) {
	font := fontBody
	if e.Mono {
		font = fontMono
	}
	algn, ok := alignments[e.Align]
	if !ok {
		algn = ppt.HorizontalLeft
	}

	for _, line := range strings.Split(text, "\n") {
		para := sh.GetActiveParagraph()
		if !*first {
			para = sh.CreateParagraph()
		}
		*first = false
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(algn))
		if line == "" {
			continue
		}
		f := ppt.NewFont().SetName(font).SetSize(points(size)).SetBold(bold)
		if e.Color != "" {
			f.SetColor(ppt.NewColor(string(e.Color)))
		}
		para.CreateTextRun(line).SetFont(f)
	}
}

// points converts hundredths of a point to whole points.
func points(size int) int {
	return (size + 50) / 100
}
