package harness

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

// Snapshot renders a result as canonical JSON lines: a header with the
// scenario name and slide count, then one line per trace event.
func Snapshot(name string, result *Result) ([]byte, error) {
	var buf bytes.Buffer
	header, err := deck.MarshalCanonical(map[string]any{
		"scenario_name": name,
		"slides":        result.Slides,
	})
	if err != nil {
		return nil, err
	}
	buf.Write(header)
	buf.WriteByte('\n')
	for _, ev := range result.Trace {
		line, err := deck.MarshalCanonical(ev)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// GoldenDir is the fixture directory used by RunWithGolden, relative to
// the package under test.
const GoldenDir = "testdata/scenarios/golden"

// GoldenPath is where the golden trace of the named scenario in
// scenarioFile lives: a golden directory next to the scenario file.
func GoldenPath(scenarioFile, name string) string {
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// RunWithGolden runs the scenario and compares its trace against
// GoldenDir/<name>.golden.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result with its golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	snap, err := Snapshot(name, result)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, snap)
	return nil
}
