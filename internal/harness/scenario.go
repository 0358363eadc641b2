package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted viewing session.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Deck is the document to present. Relative paths are resolved
	// against the scenario file's directory by LoadScenario.
	Deck string `yaml:"deck"`

	// Start is the 0-based slide the viewer opens on.
	Start int `yaml:"start,omitempty"`

	// Closable installs a close handler so esc outside fullscreen quits.
	Closable bool `yaml:"closable,omitempty"`

	// Size is the terminal size. Zero fields fall back to 100x30.
	Size Size `yaml:"size,omitempty"`

	// TableRows overrides the table rows per slide.
	TableRows int `yaml:"table_rows,omitempty"`

	Steps      []Step      `yaml:"steps"`
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Size is a terminal size in cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step presses keys in order, then optionally checks the viewer.
type Step struct {
	Keys   []string `yaml:"keys"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect is a partial view of the viewer state; nil fields are not checked.
type Expect struct {
	Slide      *int    `yaml:"slide,omitempty"`
	Title      *string `yaml:"title,omitempty"`
	Fullscreen *bool   `yaml:"fullscreen,omitempty"`
	Notes      *bool   `yaml:"notes,omitempty"`
	Grid       *bool   `yaml:"grid,omitempty"`
	Quit       *bool   `yaml:"quit,omitempty"`

	// Visible strings must appear in the rendered view.
	Visible []string `yaml:"visible,omitempty"`
	// Hidden strings must not.
	Hidden []string `yaml:"hidden,omitempty"`
}

// Assertion checks the whole trace once all steps ran.
type Assertion struct {
	Type string `yaml:"type"`

	// Title is used by trace_contains and trace_count.
	Title string `yaml:"title,omitempty"`

	// Titles is used by trace_order.
	Titles []string `yaml:"titles,omitempty"`

	// Count is used by trace_count.
	Count int `yaml:"count,omitempty"`

	// Expect is used by final_state. Visible and Hidden are ignored.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
	AssertFinalState    = "final_state"
)

// LoadScenario reads a scenario file. Unknown fields are rejected, and a
// relative deck path is resolved against the file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Deck != "" && !filepath.IsAbs(scenario.Deck) {
		scenario.Deck = filepath.Join(filepath.Dir(path), scenario.Deck)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Deck == "" {
		return fmt.Errorf("deck is required")
	}
	if _, err := os.Stat(s.Deck); os.IsNotExist(err) {
		return fmt.Errorf("deck file not found: %s", s.Deck)
	}
	if s.Start < 0 {
		return fmt.Errorf("start must not be negative")
	}
	if s.Size.Width < 0 || s.Size.Height < 0 {
		return fmt.Errorf("size must not be negative")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if len(step.Keys) == 0 {
			return fmt.Errorf("steps[%d]: keys is required", i)
		}
		for j, name := range step.Keys {
			if _, err := keyMsg(name); err != nil {
				return fmt.Errorf("steps[%d].keys[%d]: %w", i, j, err)
			}
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertTraceContains:
		if a.Title == "" {
			return fmt.Errorf("assertions[%d]: title is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Titles) == 0 {
			return fmt.Errorf("assertions[%d]: titles list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Title == "" {
			return fmt.Errorf("assertions[%d]: title is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must not be negative", index)
		}
	case AssertFinalState:
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown type %q", index, a.Type)
	}
	return nil
}
