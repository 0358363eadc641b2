package harness

// TraceEvent is the viewer state after one key press. Slide and Cursor
// are 1-based; Cursor is only set while the grid is open.
type TraceEvent struct {
	Seq        int    `json:"seq"`
	Key        string `json:"key"`
	Slide      int    `json:"slide"`
	Title      string `json:"title"`
	Kind       string `json:"kind"`
	Fullscreen bool   `json:"fullscreen,omitempty"`
	Notes      bool   `json:"notes,omitempty"`
	Grid       bool   `json:"grid,omitempty"`
	Cursor     int    `json:"cursor,omitempty"`
	Quit       bool   `json:"quit,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Slides is the number of physical slides in the compiled deck.
	Slides int `json:"slides"`

	Trace  []TraceEvent `json:"trace"`
	Errors []string     `json:"errors,omitempty"`
}

// NewResult creates a passing, empty result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records a failure.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Last returns the most recent event, or false if nothing was pressed.
func (r *Result) Last() (TraceEvent, bool) {
	if len(r.Trace) == 0 {
		return TraceEvent{}, false
	}
	return r.Trace[len(r.Trace)-1], true
}
