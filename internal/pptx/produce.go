package pptx

import (
	"bytes"
	"fmt"
	"io"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
)

// Produce compiles doc and returns the presentation bytes.
func Produce(doc *deck.Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	d, err := layout.Compile(doc, o.layout)
	if err != nil {
		return nil, &ProduceError{Err: err}
	}
	var buf bytes.Buffer
	if err := write(&buf, d, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes an already compiled deck to w.
func Write(w io.Writer, d *layout.Deck, opts ...Option) error {
	if d == nil {
		return &ProduceError{Err: fmt.Errorf("deck is nil")}
	}
	return write(w, d, newOptions(opts))
}

func write(w io.Writer, d *layout.Deck, o options) error {
	p, err := build(d, o.clock().UTC().Truncate(time.Second))
	if err != nil {
		return err
	}
	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return &ProduceError{Err: err}
	}
	if err := pw.WriteTo(w); err != nil {
		return &ProduceError{Err: err}
	}
	return nil
}

// build maps the compiled deck onto a presentation. A new presentation
// already holds one slide, which becomes the first rendered slide; an empty
// deck therefore produces a single blank slide.
func build(d *layout.Deck, created time.Time) (*ppt.Presentation, error) {
	p := ppt.New()
	p.GetLayout().SetLayout(ppt.LayoutScreen16x9)

	props := p.GetDocumentProperties()
	props.Title = d.Title
	props.Subject = d.Subtitle
	props.Creator = d.Author
	props.LastModifiedBy = d.Author
	props.Company = d.Organization
	// Keywords carries the fingerprint so a package can be traced back to
	// the document it was compiled from.
	props.Keywords = d.Fingerprint
	props.Created = created
	props.Modified = created

	for i, s := range d.Slides {
		slide := p.Slides()[0]
		if i > 0 {
			slide = p.CreateSlide()
		}
		if err := fillSlide(slide, s); err != nil {
			return nil, &ProduceError{Part: slidePart(i + 1), Err: err}
		}
	}
	return p, nil
}

func slidePart(n int) string { return fmt.Sprintf("ppt/slides/slide%d.xml", n) }
