package viewer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

func renderPage(t *testing.T, v *Viewer, links Links) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, v, links))
	doc, err := html.Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return buf.String(), doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func navLink(t *testing.T, doc *html.Node, class string) string {
	t.Helper()
	links := findAll(doc, func(n *html.Node) bool { return n.Data == "a" && attr(n, "class") == class })
	require.Len(t, links, 1, class)
	return attr(links[0], "href")
}

func TestRenderHTMLNavigationClamps(t *testing.T) {
	d := compile(t, sampleDeck)

	_, doc := renderPage(t, New(d), Links{Base: "/deck"})
	assert.Equal(t, "/deck?slide=1", navLink(t, doc, "prev"))
	assert.Equal(t, "/deck?slide=2", navLink(t, doc, "next"))
	assert.Equal(t, "/deck?slide=1", navLink(t, doc, "first"))
	assert.Equal(t, "/deck?slide=6", navLink(t, doc, "last"))

	page, doc := renderPage(t, New(d, WithStart(5)), Links{Base: "/deck"})
	assert.Equal(t, "/deck?slide=5", navLink(t, doc, "prev"))
	assert.Equal(t, "/deck?slide=6", navLink(t, doc, "next"))
	assert.Contains(t, page, "6 / 6")
}

func TestRenderHTMLDownloadLink(t *testing.T) {
	d := compile(t, sampleDeck)

	_, doc := renderPage(t, New(d), Links{Download: "/deck.pptx"})
	assert.Equal(t, "/deck.pptx", navLink(t, doc, "download"))
	assert.Equal(t, "?slide=2", navLink(t, doc, "next"))

	_, doc = renderPage(t, New(d), Links{})
	assert.Empty(t, findAll(doc, func(n *html.Node) bool { return attr(n, "class") == "download" }))
}

func TestRenderHTMLSeverityStyles(t *testing.T) {
	_, doc := renderPage(t, New(compile(t, sampleDeck), WithStart(2)), Links{})
	want := palette.Default().Severity(deck.SeverityWarning)

	warnings := findAll(doc, func(n *html.Node) bool { return attr(n, "data-severity") == string(deck.SeverityWarning) })
	require.NotEmpty(t, warnings)
	style := attr(warnings[0], "style")
	assert.Contains(t, style, "background:"+want.Background.Hex())
	assert.Contains(t, style, "color:"+want.Foreground.Hex())
}

func TestRenderHTMLOmitsNotes(t *testing.T) {
	d := compile(t, sampleDeck)
	for i := range d.Slides {
		page, _ := renderPage(t, New(d, WithStart(i)), Links{})
		assert.NotContains(t, page, "SECRET-NOTE")
	}
}

func TestRenderHTMLElements(t *testing.T) {
	d := compile(t, sampleDeck)
	page, doc := renderPage(t, New(d, WithStart(3)), Links{})

	slides := findAll(doc, func(n *html.Node) bool { return attr(n, "class") == "slide" })
	require.Len(t, slides, 1)
	assert.Equal(t, "table", attr(slides[0], "data-kind"))

	headers := findAll(doc, func(n *html.Node) bool { return attr(n, "data-role") == "table-header" })
	assert.Len(t, headers, 2)
	assert.Contains(t, page, "db-8")
	assert.NotContains(t, page, "db-9")
	assert.True(t, strings.Contains(page, "<title>Hosts · Incident Review</title>"), page)
}

func TestRenderHTMLEscapesText(t *testing.T) {
	d := compile(t, `{"title":"A <b> & C","slides":[{"title":"x < y","content":"<script>alert(1)</script>"}]}`)
	page, _ := renderPage(t, New(d), Links{})
	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.00%", percent(0))
	assert.Equal(t, "28.00%", percent(2800))
	assert.Equal(t, "3.33%", percent(333))
	assert.Equal(t, "100.00%", percent(10000))
}
