package viewer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

// Page size in CSS pixels. One point of font size is one pixel at this
// size, since a widescreen slide is 960pt wide.
const (
	pageWidthPx  = 960
	pageHeightPx = 540
)

// Links are the URLs the HTML page navigates with. Slide links are Base
// followed by "?slide=N", 1-based.
type Links struct {
	Base     string
	Download string
}

func (l Links) slide(i int) string {
	return fmt.Sprintf("%s?slide=%d", l.Base, i+1)
}

// RenderHTML writes the viewer's current page as an HTML document. The
// navigation links use the same clamped transitions as the viewer. Speaker
// notes are not part of the page.
func RenderHTML(w io.Writer, v *Viewer, links Links) error {
	d := v.Deck()
	s := v.State()
	total := v.TotalSlides()
	rs := v.Current()

	title := d.Title
	if rs.Title != "" {
		title = rs.Title + " · " + d.Title
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	t := element(atom.Title)
	t.AppendChild(text(title))
	head.AppendChild(t)
	st := element(atom.Style)
	st.AppendChild(text(stylesheet))
	head.AppendChild(st)
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	nav := element(atom.Nav, "class", "controls")
	nav.AppendChild(link(links.slide(0), "first", "« First"))
	nav.AppendChild(link(links.slide(s.Prev().Index), "prev", "‹ Prev"))
	counter := element(atom.Span, "class", "counter")
	counter.AppendChild(text(fmt.Sprintf("%d / %d", min(s.Index+1, total), total)))
	nav.AppendChild(counter)
	nav.AppendChild(link(links.slide(s.Next(total).Index), "next", "Next ›"))
	nav.AppendChild(link(links.slide(max(total-1, 0)), "last", "Last »"))
	if links.Download != "" {
		nav.AppendChild(link(links.Download, "download", "Download .pptx"))
	}
	body.AppendChild(nav)

	body.AppendChild(slideNode(rs))

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

func slideNode(rs layout.RenderedSlide) *html.Node {
	bg := rs.Background
	if bg == "" {
		bg = palette.White
	}
	section := element(atom.Section,
		"class", "slide",
		"data-kind", string(rs.Kind),
		"style", fmt.Sprintf("width:%dpx;height:%dpx;background:%s", pageWidthPx, pageHeightPx, bg.Hex()),
	)
	for _, e := range rs.Elements {
		section.AppendChild(elementNode(e))
	}
	return section
}

func elementNode(e layout.Element) *html.Node {
	css := []string{
		"left:" + percent(e.Frame.X),
		"top:" + percent(e.Frame.Y),
		"width:" + percent(e.Frame.W),
		"height:" + percent(e.Frame.H),
	}
	if e.Fill != "" {
		css = append(css, "background:"+e.Fill.Hex())
	}
	if e.Color != "" {
		css = append(css, "color:"+e.Color.Hex())
	}
	if e.Border != "" {
		css = append(css, "border:1px solid "+e.Border.Hex())
	}
	if e.Size > 0 {
		css = append(css, fmt.Sprintf("font-size:%d.%02dpx", e.Size/100, e.Size%100))
	}
	if e.Bold {
		css = append(css, "font-weight:bold")
	}
	if e.Mono {
		css = append(css, "font-family:monospace")
	}
	if e.Align != "" {
		css = append(css, "text-align:"+string(e.Align))
	}
	if e.Middle {
		css = append(css, "justify-content:center")
	}

	attrs := []string{"class", "el", "data-role", string(e.Role), "style", strings.Join(css, ";")}
	if e.Severity != "" {
		attrs = append(attrs, "data-severity", string(e.Severity))
	}
	n := element(atom.Div, attrs...)
	if e.Text != "" {
		n.AppendChild(lines(atom.P, e.Text))
	}
	if e.Detail != "" {
		n.AppendChild(lines(atom.Small, e.Detail))
	}
	return n
}

// percent formats canvas units as a CSS percentage with two decimals.
func percent(v int) string {
	return fmt.Sprintf("%d.%02d%%", v*100/layout.Units, v*10000/layout.Units%100)
}

func lines(a atom.Atom, s string) *html.Node {
	n := element(a)
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			n.AppendChild(element(atom.Br))
		}
		n.AppendChild(text(line))
	}
	return n
}

func link(href, rel, label string) *html.Node {
	a := element(atom.A, "href", href, "class", rel)
	a.AppendChild(text(label))
	return a
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

const stylesheet = `body{margin:0;padding:16px;background:#0F172A;font-family:Calibri,Arial,sans-serif}
.controls{display:flex;gap:12px;align-items:center;margin-bottom:12px;color:#F8FAFC}
.controls a{color:#5EEAD4;text-decoration:none}
.slide{position:relative;overflow:hidden;box-sizing:border-box}
.el{position:absolute;box-sizing:border-box;display:flex;flex-direction:column;padding:0 8px;overflow:hidden;border-radius:4px}
.el p,.el small{margin:0}
.el small{font-weight:normal;font-size:85%}`
