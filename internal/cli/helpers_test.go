package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hapi-suta/runbookforge-sub002/internal/config"
)

var (
	failoverDeck    = filepath.Join("..", "loader", "testdata", "failover.json")
	failoverYAML    = filepath.Join("..", "loader", "testdata", "failover.yaml")
	diagnosticsDeck = filepath.Join("..", "loader", "testdata", "diagnostics.json")
	brokenDeck      = filepath.Join("..", "loader", "testdata", "broken.json")
	scenariosDir    = filepath.Join("..", "harness", "testdata", "scenarios")
)

func testOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return &RootOptions{Format: format, Config: cfg, Logger: zap.NewNop()}
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
