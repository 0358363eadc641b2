package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }

func drillScenario(steps ...Step) *Scenario {
	return &Scenario{
		Name:  "inline",
		Deck:  "testdata/decks/drill.json",
		Steps: steps,
	}
}

func TestRunScenarioFiles(t *testing.T) {
	files, err := Discover("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(path, func(t *testing.T) {
			s, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Equal(t, 5, result.Slides)
		})
	}
}

func TestRunReportsFailedExpectations(t *testing.T) {
	s := drillScenario(Step{
		Keys:   []string{"right"},
		Expect: &Expect{Slide: intp(3), Title: strp("Hosts"), Fullscreen: boolp(true)},
	})

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "slide: want 3, got 2")
	assert.Contains(t, result.Errors[1], `title: want "Hosts", got "Agenda"`)
	assert.Contains(t, result.Errors[2], "fullscreen: want true, got false")
}

func TestRunEscWithoutCloseHandlerStays(t *testing.T) {
	s := drillScenario(Step{Keys: []string{"esc", "right"}, Expect: &Expect{Quit: boolp(false), Slide: intp(2)}})

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Len(t, result.Trace, 2)
}

func TestRunKeysAfterQuit(t *testing.T) {
	s := drillScenario(Step{Keys: []string{"q", "right"}})

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Trace, 1)
	assert.True(t, result.Trace[0].Quit)
	assert.Contains(t, result.Errors[0], `key "right" pressed after the viewer quit`)
}

func TestRunStartAndTableRows(t *testing.T) {
	s := drillScenario(Step{Keys: []string{"end"}, Expect: &Expect{Slide: intp(4), Title: strp("Questions?")}})
	s.Start = 2
	s.TableRows = 20

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 4, result.Slides)
}

func TestRunViewChecks(t *testing.T) {
	s := drillScenario(Step{
		Keys:   []string{"n"},
		Expect: &Expect{Visible: []string{"Open with the timeline.", "not on screen"}, Hidden: []string{"Speaker notes"}},
	})

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], `"not on screen" to be visible`)
	assert.Contains(t, result.Errors[1], `"Speaker notes" to be hidden`)
}

func TestRunMissingDeck(t *testing.T) {
	s := drillScenario(Step{Keys: []string{"right"}})
	s.Deck = "testdata/decks/missing.json"

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load deck")
}
