package loader

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

func normalized(t *testing.T, doc *deck.Document) map[string]any {
	t.Helper()
	data, err := doc.Normalized()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestLoadFormatsAgree(t *testing.T) {
	jsonDoc, err := Load("testdata/failover.json")
	require.NoError(t, err)
	require.Len(t, jsonDoc.Slides, 7)
	assert.Equal(t, "Database Failover Drill", jsonDoc.Title)
	assert.Equal(t, "Platform SRE", jsonDoc.Organization)

	want := normalized(t, jsonDoc)
	for _, name := range []string{"testdata/failover.yaml", "testdata/failover.cue"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			doc, err := Load(name)
			require.NoError(t, err)
			if diff := cmp.Diff(want, normalized(t, doc)); diff != "" {
				t.Errorf("document mismatch (-json +%s):\n%s", filepath.Ext(name), diff)
			}
			assert.Equal(t, deck.MustFingerprint(jsonDoc), deck.MustFingerprint(doc))
		})
	}
}

func TestLoadKeepsSlideVariants(t *testing.T) {
	doc, err := Load("testdata/failover.yaml")
	require.NoError(t, err)

	pain, ok := doc.Slides[2].(*deck.PainPointsSlide)
	require.True(t, ok)
	assert.Equal(t, deck.SeverityWarning, pain.Items[0].Type)
	require.NotNil(t, pain.KeyInsight)
	assert.Equal(t, "Root cause", pain.KeyInsight.Title)

	table, ok := doc.Slides[4].(*deck.TableSlide)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"db-1", "5432"}, {"db-2", "5432"}}, table.Table.Rows)
	assert.Equal(t, "Welcome everyone.", doc.Slides[0].Notes())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing file", filepath.Join(dir, "nope.json"), ErrCodeNotFound},
		{"unsupported extension", write("deck.toml", "title = 'x'"), ErrCodeUnsupported},
		{"bad json", "testdata/broken.json", ErrCodeSyntax},
		{"bad yaml", write("bad.yaml", "title: [unclosed"), ErrCodeSyntax},
		{"bad cue", write("bad.cue", "title: "), ErrCodeSyntax},
		{"incomplete cue", write("open.cue", "title: string\nslides: []"), ErrCodeBuildFailed},
		{"json array", write("list.json", "[1, 2]"), ErrCodeStructure},
		{"empty yaml", write("empty.yaml", ""), ErrCodeStructure},
		{"slides not a list", write("slides.json", `{"title":"x","slides":"nope"}`), ErrCodeStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "got %T: %v", err, err)
			assert.Equal(t, tt.code, loadErr.Code, loadErr.Error())
		})
	}
}

func TestLoadErrorPosition(t *testing.T) {
	_, err := Load("testdata/broken.json")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 4, loadErr.Line)
	assert.Contains(t, loadErr.Error(), "testdata/broken.json:4:")
}

func TestDecodeLenientYAML(t *testing.T) {
	src := Source{Name: "inline.yaml", Format: FormatYAML, Data: []byte(`
title: 2024
base: &base {title: Shared}
slides:
  - *base
  - layout: Pain Points
    items: [Lag, {title: Drift, type: WARNING}]
  - just a heading
  - 7
`)}
	doc, err := Decode(src)
	require.NoError(t, err)

	assert.Equal(t, "2024", doc.Title)
	require.Len(t, doc.Slides, 4)
	assert.Equal(t, "Shared", doc.Slides[0].Heading())
	assert.Equal(t, deck.KindPainPoints, doc.Slides[1].Kind())
	pain := doc.Slides[1].(*deck.PainPointsSlide)
	assert.Equal(t, deck.SeverityWarning, pain.Items[1].Type)
	assert.Equal(t, "just a heading", doc.Slides[2].Heading())
	assert.Equal(t, deck.KindContent, doc.Slides[3].Kind())
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"a.json": FormatJSON, "b.YAML": FormatYAML, "c.yml": FormatYAML, "d.cue": FormatCUE,
	} {
		got, ok := FormatOf(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	assert.False(t, IsDocument("deck.pptx"))
	assert.True(t, IsDocument("deck.json"))
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")
	line, col := lineColumn(data, 0)
	assert.Equal(t, [2]int{1, 1}, [2]int{line, col})
	line, col = lineColumn(data, 4)
	assert.Equal(t, [2]int{2, 2}, [2]int{line, col})
	line, col = lineColumn(data, 100)
	assert.Equal(t, [2]int{3, 3}, [2]int{line, col})
}
