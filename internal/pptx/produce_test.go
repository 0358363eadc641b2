package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

var fixedTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func parse(t *testing.T, src string) *deck.Document {
	t.Helper()
	doc, err := deck.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func produce(t *testing.T, src string, opts ...Option) *Summary {
	t.Helper()
	data, err := Produce(parse(t, src), append([]Option{WithClock(fixedClock)}, opts...)...)
	require.NoError(t, err)
	sum, err := Inspect(data)
	require.NoError(t, err)
	return sum
}

const basicDeck = `{"title":"Failover <Drill> & Review","subtitle":"Quarterly","author":"Dana Ops","organization":"Platform SRE","slides":[
	{"layout":"title"},
	{"layout":"agenda","title":"Agenda","items":["Detect","Promote"]},
	{"layout":"pain-points","title":"Pain","items":[{"title":"Replication lag","description":"minutes behind","type":"warning"}],
	 "speakerNotes":"Pause here.\n\nAsk about last incident."},
	{"layout":"three-column","title":"Tiers","columns":[{"title":"Hot","items":["primary"]}]},
	{"layout":"questions"}
]}`

func TestProduceSlideCount(t *testing.T) {
	sum := produce(t, basicDeck)

	assert.Len(t, sum.Slides, 5)
	assert.Equal(t, int64(SlideWidth), sum.Width)
	assert.Equal(t, int64(SlideHeight), sum.Height)
	assert.Equal(t, float64(16)/9, float64(sum.Width)/float64(sum.Height))
	for i, s := range sum.Slides {
		assert.Equal(t, i+1, s.Number)
	}
}

func TestProduceMetadata(t *testing.T) {
	sum := produce(t, basicDeck)

	assert.Equal(t, "Failover <Drill> & Review", sum.Title)
	assert.Equal(t, "Quarterly", sum.Subject)
	assert.Equal(t, "Dana Ops", sum.Creator)
	assert.Equal(t, fixedTime, sum.Created)

	d, err := layout.Compile(parse(t, basicDeck), layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, d.Fingerprint, sum.Identifier, "identifier derives from the document")

	data, err := Produce(parse(t, basicDeck), WithClock(fixedClock))
	require.NoError(t, err)
	assert.Contains(t, string(entry(t, data, "docProps/app.xml")), "<Company>Platform SRE</Company>")
}

func TestProduceTablePagination(t *testing.T) {
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = fmt.Sprintf(`["db-%02d","5432"]`, i)
	}
	src := fmt.Sprintf(`{"title":"T","slides":[{"layout":"table","title":"Hosts",
		"tableData":{"headers":["Host","Port"],"rows":[%s]}}]}`, strings.Join(rows, ","))

	sum := produce(t, src, WithLayout(layout.Options{TableRowsPerSlide: 8}))
	require.Len(t, sum.Slides, 3)

	seen := 0
	for _, s := range sum.Slides {
		text := s.Text()
		assert.Contains(t, text, "Host")
		assert.Contains(t, text, "Port")
		for _, line := range text {
			if strings.HasPrefix(line, "db-") {
				seen++
			}
		}
	}
	assert.Equal(t, 20, seen)
	assert.Contains(t, sum.Slides[1].Text(), "Hosts (continued)")
}

func TestProduceSeverityColors(t *testing.T) {
	data, err := Produce(parse(t, basicDeck), WithClock(fixedClock))
	require.NoError(t, err)
	sum, err := Inspect(data)
	require.NoError(t, err)
	want := palette.Default().Severity(deck.SeverityWarning)

	var found bool
	for _, sh := range sum.Slides[2].Shapes {
		if strings.HasPrefix(sh.Text, "Replication lag") {
			found = true
			assert.Equal(t, string(want.Foreground), sh.TextColor)
			assert.Equal(t, "Replication lag\nminutes behind", sh.Text)
			assert.Equal(t, string(want.Background), shapeFill(t, data, "ppt/slides/slide3.xml", sh.Name))
		}
	}
	assert.True(t, found)
}

func TestProduceNotesStayOutOfBody(t *testing.T) {
	data, err := Produce(parse(t, basicDeck), WithClock(fixedClock))
	require.NoError(t, err)

	sum, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, "Pause here.\n\nAsk about last incident.", sum.Slides[2].Notes)
	for _, s := range sum.Slides {
		for _, line := range s.Text() {
			assert.NotContains(t, line, "Pause here")
		}
	}
	assert.Empty(t, sum.Slides[0].Notes)

	names := entryNames(t, data)
	assert.Contains(t, names, "ppt/notesSlides/notesSlide3.xml")
	assert.NotContains(t, names, "ppt/notesSlides/notesSlide1.xml")

	slide := entry(t, data, "ppt/slides/slide3.xml")
	assert.NotContains(t, string(slide), "Pause here")
}

func TestProduceThreeColumnRegions(t *testing.T) {
	sum := produce(t, basicDeck)

	var widths []int64
	for _, sh := range sum.Slides[3].Shapes {
		if strings.HasPrefix(sh.Name, string(layout.RoleColumn)+" ") {
			widths = append(widths, sh.W)
		}
	}
	require.Len(t, widths, 3)
	assert.Equal(t, widths[0], widths[1])
	assert.Equal(t, widths[0], widths[2])
}

func TestProduceIsDeterministic(t *testing.T) {
	doc := parse(t, basicDeck)

	a, err := Produce(doc, WithClock(fixedClock))
	require.NoError(t, err)
	b, err := Produce(doc, WithClock(fixedClock))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))

	later, err := Produce(doc, WithClock(func() time.Time { return fixedTime.Add(time.Hour) }))
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, later), "only timestamps differ")
	assert.Equal(t, entry(t, a, "ppt/slides/slide2.xml"), entry(t, later, "ppt/slides/slide2.xml"))
}

func TestProduceConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)

	docs := make([]*deck.Document, 8)
	want := make([][]byte, len(docs))
	for i := range docs {
		docs[i] = parse(t, fmt.Sprintf(`{"title":"Deck %d","slides":[
			{"layout":"title"},
			{"layout":"monitoring","title":"Signals %d","items":[{"title":"lag","type":"danger"}],"speakerNotes":"n%d"}]}`, i, i, i))
		var err error
		want[i], err = Produce(docs[i], WithClock(fixedClock))
		require.NoError(t, err)
	}

	got := make([][]byte, len(docs))
	errs := make([]error, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = Produce(docs[i], WithClock(fixedClock))
		}(i)
	}
	wg.Wait()

	for i := range docs {
		require.NoError(t, errs[i])
		assert.True(t, bytes.Equal(want[i], got[i]), "document %d", i)
	}
}

func TestProducePackageLayout(t *testing.T) {
	data, err := Produce(parse(t, basicDeck), WithClock(fixedClock))
	require.NoError(t, err)

	names := entryNames(t, data)
	require.NotEmpty(t, names)
	assert.Equal(t, "[Content_Types].xml", names[0])
	for _, name := range []string{
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide5.xml",
		"ppt/notesSlides/notesSlide3.xml",
	} {
		assert.Contains(t, names, name)
	}

	core := string(entry(t, data, "docProps/core.xml"))
	assert.Contains(t, core, "2026-03-14T15:09:26Z")
	assert.Contains(t, core, "Failover &lt;Drill&gt; &amp; Review")

	types := string(entry(t, data, "[Content_Types].xml"))
	assert.Contains(t, types, `PartName="/ppt/notesSlides/notesSlide3.xml"`)
	assert.NotContains(t, types, `PartName="/ppt/notesSlides/notesSlide1.xml"`)
}

func TestProduceEmptyDeck(t *testing.T) {
	sum := produce(t, `{"title":"Empty","slides":[]}`)
	require.Len(t, sum.Slides, 1, "a presentation keeps one blank slide")
	assert.Empty(t, sum.Slides[0].Shapes)
	assert.Empty(t, sum.Slides[0].Notes)
	assert.Equal(t, "Empty", sum.Title)
}

func TestProduceRejectsNilSlides(t *testing.T) {
	_, err := Produce(&deck.Document{Title: "T", Slides: []deck.Slide{nil}})
	require.Error(t, err)

	var produceErr *ProduceError
	require.True(t, errors.As(err, &produceErr))
	var structural *layout.StructuralError
	assert.True(t, errors.As(err, &structural))

	err = Write(&bytes.Buffer{}, nil)
	require.ErrorAs(t, err, &produceErr)
}

func TestWriteReportsWriterFailures(t *testing.T) {
	d, err := layout.Compile(parse(t, basicDeck), layout.DefaultOptions())
	require.NoError(t, err)

	err = Write(failingWriter{}, d, WithClock(fixedClock))
	var produceErr *ProduceError
	require.ErrorAs(t, err, &produceErr)
}

func TestInspectRejectsGarbage(t *testing.T) {
	_, err := Inspect([]byte("not a zip"))
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func entryNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}

func entry(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	rc, err := zr.Open(name)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	return body
}

// shapeFill returns the solid fill written for the named shape.
func shapeFill(t *testing.T, data []byte, part, name string) string {
	t.Helper()
	for _, chunk := range strings.Split(string(entry(t, data, part)), "<p:sp>") {
		if !strings.Contains(chunk, `name="`+name+`"`) {
			continue
		}
		spPr := chunk[strings.Index(chunk, "<p:spPr>"):strings.Index(chunk, "</p:spPr>")]
		m := srgbFill.FindStringSubmatch(spPr)
		require.NotNil(t, m, "shape %q has no solid fill", name)
		return m[1]
	}
	t.Fatalf("shape %q not found in %s", name, part)
	return ""
}

var srgbFill = regexp.MustCompile(`<a:solidFill><a:srgbClr val="([0-9A-F]{6})"/></a:solidFill>`)
