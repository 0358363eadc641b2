package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapi-suta/runbookforge-sub002/internal/pptx"
)

func TestCompileWritesPackage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "drill.pptx")

	stdout, err := execute(NewCompileCommand(testOptions(t, "text")), failoverDeck, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, `✓ Compiled "Database Failover Drill": 7 slide(s)`)
	assert.Contains(t, stdout, "Wrote "+out)

	sum, err := pptx.Open(out)
	require.NoError(t, err)
	assert.Equal(t, "Database Failover Drill", sum.Title)
	assert.Len(t, sum.Slides, 7)
}

func TestCompileJSONSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "drill.pptx")

	stdout, err := execute(NewCompileCommand(testOptions(t, "json")), failoverYAML, "--output", out)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   CompileSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, out, resp.Data.Output)
	assert.Equal(t, 7, resp.Data.Slides)
	assert.Len(t, resp.Data.Fingerprint, 64)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, int64(resp.Data.Bytes), info.Size())
}

func TestCompileDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(failoverDeck)
	require.NoError(t, err)
	deckPath := filepath.Join(dir, "drill.json")
	require.NoError(t, os.WriteFile(deckPath, data, 0o644))

	_, err = execute(NewCompileCommand(testOptions(t, "text")), deckPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "drill.pptx"))
}

func TestCompileRecordsExport(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(t, "json")
	opts.Config.Journal.Path = filepath.Join(dir, "journal.db")

	_, err := execute(NewCompileCommand(opts), failoverDeck, "-o", filepath.Join(dir, "a.pptx"))
	require.NoError(t, err)

	stdout, err := execute(NewHistoryCommand(opts))
	require.NoError(t, err)

	var resp struct {
		Data []struct {
			Title  string `json:"title"`
			Source string `json:"source"`
			Slides int    `json:"slides"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Database Failover Drill", resp.Data[0].Title)
	assert.Equal(t, failoverDeck, resp.Data[0].Source)
	assert.Equal(t, 7, resp.Data[0].Slides)
}

func TestCompileLoadErrors(t *testing.T) {
	dir := t.TempDir()
	toml := filepath.Join(dir, "deck.toml")
	require.NoError(t, os.WriteFile(toml, []byte("title = 'x'"), 0o644))

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing file", filepath.Join(dir, "nope.json"), "E005"},
		{"unsupported extension", toml, "E003"},
		{"syntax error", brokenDeck, "E004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := execute(NewCompileCommand(testOptions(t, "text")), tt.path, "-o", filepath.Join(dir, "out.pptx"))
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.code+"]")
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "out.pptx"))
}

func TestCompileRequiresOneArgument(t *testing.T) {
	_, err := execute(NewCompileCommand(testOptions(t, "text")))
	require.Error(t, err)
}
