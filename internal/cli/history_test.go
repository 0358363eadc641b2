package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryWithoutJournal(t *testing.T) {
	stdout, err := execute(NewHistoryCommand(testOptions(t, "text")))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "no journal configured")
}

func TestHistoryEmptyJournal(t *testing.T) {
	opts := testOptions(t, "text")
	opts.Config.Journal.Path = filepath.Join(t.TempDir(), "journal.db")

	stdout, err := execute(NewHistoryCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, "No exports recorded.\n", stdout)

	opts.Format = "json"
	stdout, err = execute(NewHistoryCommand(opts))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":[]}`, stdout)
}

func TestHistoryTextAndFilters(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(t, "text")
	opts.Config.Journal.Path = filepath.Join(dir, "journal.db")

	for _, name := range []string{"a.pptx", "b.pptx"} {
		_, err := execute(NewCompileCommand(opts), failoverDeck, "-o", filepath.Join(dir, name))
		require.NoError(t, err)
	}

	stdout, err := execute(NewHistoryCommand(opts), "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "7 slide(s)")
	assert.Contains(t, stdout, "Database Failover Drill")
	assert.Equal(t, 1, countLines(stdout))

	stdout, err = execute(NewHistoryCommand(opts), "--fingerprint", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "No exports recorded.\n", stdout)
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
