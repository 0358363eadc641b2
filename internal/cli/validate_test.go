package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidDeck(t *testing.T) {
	for _, path := range []string{failoverDeck, failoverYAML} {
		t.Run(path, func(t *testing.T) {
			stdout, err := execute(NewValidateCommand(testOptions(t, "text")), path)
			require.NoError(t, err)
			assert.Contains(t, stdout, "✓ "+path+" is valid")
		})
	}
}

func TestValidateReportsDiagnostics(t *testing.T) {
	stdout, err := execute(NewValidateCommand(testOptions(t, "text")), diagnosticsDeck)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "problem(s) in "+diagnosticsDeck)
	assert.Contains(t, stdout, "E102")
	assert.Contains(t, stdout, "E103")
	assert.Contains(t, stdout, "E104")
	assert.Contains(t, stdout, "E105")
}

func TestValidateJSON(t *testing.T) {
	stdout, err := execute(NewValidateCommand(testOptions(t, "json")), diagnosticsDeck)
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Valid       bool `json:"valid"`
			Diagnostics []struct {
				Code string `json:"code"`
				Line int    `json:"line"`
			} `json:"diagnostics"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.NotEmpty(t, resp.Data.Diagnostics)
	for _, d := range resp.Data.Diagnostics {
		assert.Positive(t, d.Line, d.Code)
	}
}

func TestValidateSyntaxError(t *testing.T) {
	stdout, err := execute(NewValidateCommand(testOptions(t, "json")), brokenDeck)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E004", resp.Error.Code)
}
