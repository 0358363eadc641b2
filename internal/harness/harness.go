package harness

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
	"github.com/hapi-suta/runbookforge-sub002/internal/viewer"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

var namedKeys = map[string]tea.KeyType{
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"esc":    tea.KeyEsc,
	"enter":  tea.KeyEnter,
	"space":  tea.KeySpace,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
}

// keyMsg turns a key name into the message bubbletea would deliver.
func keyMsg(name string) (tea.KeyMsg, error) {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}, nil
	}
	return tea.KeyMsg{}, fmt.Errorf("unknown key %q", name)
}

// Run compiles the scenario's deck, presses every key and evaluates the
// expectations. The returned error covers setup failures only; failed
// expectations are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	doc, err := loader.Load(scenario.Deck)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	opts := layout.DefaultOptions()
	if scenario.TableRows > 0 {
		opts.TableRowsPerSlide = scenario.TableRows
	}
	d, err := layout.Compile(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to compile deck: %w", err)
	}

	vopts := []viewer.Option{viewer.WithStart(scenario.Start)}
	if scenario.Closable {
		vopts = append(vopts, viewer.WithCloseHandler(func() {}))
	}
	m := viewer.NewModel(viewer.New(d, vopts...))

	w, h := scenario.Size.Width, scenario.Size.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	m = update(m, tea.WindowSizeMsg{Width: w, Height: h})

	result := NewResult()
	result.Slides = m.Viewer().TotalSlides()

	seq := 0
	for i, step := range scenario.Steps {
		for _, name := range step.Keys {
			msg, err := keyMsg(name)
			if err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
			if m.Quitting() {
				result.AddError(fmt.Sprintf("steps[%d]: key %q pressed after the viewer quit", i, name))
				continue
			}
			m = update(m, msg)
			seq++
			result.Trace = append(result.Trace, snapshot(m, seq, name))
		}
		if step.Expect == nil {
			continue
		}
		ev, _ := result.Last()
		for _, msg := range matchState(ev, step.Expect) {
			result.AddError(fmt.Sprintf("steps[%d]: %s", i, msg))
		}
		for _, msg := range matchView(m.View(), step.Expect) {
			result.AddError(fmt.Sprintf("steps[%d]: %s", i, msg))
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func update(m viewer.Model, msg tea.Msg) viewer.Model {
	next, _ := m.Update(msg)
	return next.(viewer.Model)
}

func snapshot(m viewer.Model, seq int, key string) TraceEvent {
	v := m.Viewer()
	cur := v.Current()
	ev := TraceEvent{
		Seq:        seq,
		Key:        key,
		Slide:      v.CurrentSlideIndex() + 1,
		Title:      cur.Title,
		Kind:       string(cur.Kind),
		Fullscreen: v.IsFullscreen(),
		Notes:      m.NotesVisible(),
		Grid:       m.GridOpen(),
		Quit:       m.Quitting(),
	}
	if ev.Grid {
		ev.Cursor = m.GridCursor() + 1
	}
	return ev
}

func matchView(view string, e *Expect) []string {
	var out []string
	for _, s := range e.Visible {
		if !strings.Contains(view, s) {
			out = append(out, fmt.Sprintf("expected %q to be visible", s))
		}
	}
	for _, s := range e.Hidden {
		if strings.Contains(view, s) {
			out = append(out, fmt.Sprintf("expected %q to be hidden", s))
		}
	}
	return out
}
