package harness

import (
	"fmt"
	"strings"
)

// AssertionError is a failed scenario assertion with the trace that
// produced it.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []TraceEvent
}

func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, ev := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s -> %d %q\n", ev.Seq, ev.Key, ev.Slide, ev.Title)
	}
	return buf.String()
}

// EvaluateAssertions returns one message per failed assertion.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var out []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, a)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, a)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, a)
		case AssertFinalState:
			err = assertFinalState(result.Trace, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			out = append(out, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return out
}

func assertTraceContains(trace []TraceEvent, a Assertion) error {
	for _, ev := range trace {
		if ev.Title == a.Title {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("slide %q shown", a.Title),
		Actual:   "never shown",
		Trace:    trace,
	}
}

// assertTraceOrder accepts other slides between the listed ones.
func assertTraceOrder(trace []TraceEvent, a Assertion) error {
	next := 0
	for _, ev := range trace {
		if next < len(a.Titles) && ev.Title == a.Titles[next] {
			next++
		}
	}
	if next == len(a.Titles) {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceOrder,
		Expected: strings.Join(a.Titles, " -> "),
		Actual:   fmt.Sprintf("stopped before %q", a.Titles[next]),
		Trace:    trace,
	}
}

func assertTraceCount(trace []TraceEvent, a Assertion) error {
	n := 0
	for _, ev := range trace {
		if ev.Title == a.Title {
			n++
		}
	}
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceCount,
		Expected: fmt.Sprintf("%q shown %d times", a.Title, a.Count),
		Actual:   fmt.Sprintf("%d times", n),
		Trace:    trace,
	}
}

func assertFinalState(trace []TraceEvent, a Assertion) error {
	if len(trace) == 0 {
		return &AssertionError{Type: AssertFinalState, Expected: "at least one key press", Actual: "empty trace"}
	}
	if diffs := matchState(trace[len(trace)-1], a.Expect); len(diffs) > 0 {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: "final state to match",
			Actual:   strings.Join(diffs, "; "),
			Trace:    trace,
		}
	}
	return nil
}

// matchState compares the non-nil fields of e with ev.
func matchState(ev TraceEvent, e *Expect) []string {
	var out []string
	if e.Slide != nil && *e.Slide != ev.Slide {
		out = append(out, fmt.Sprintf("slide: want %d, got %d", *e.Slide, ev.Slide))
	}
	if e.Title != nil && *e.Title != ev.Title {
		out = append(out, fmt.Sprintf("title: want %q, got %q", *e.Title, ev.Title))
	}
	flag := func(name string, want *bool, got bool) {
		if want != nil && *want != got {
			out = append(out, fmt.Sprintf("%s: want %t, got %t", name, *want, got))
		}
	}
	flag("fullscreen", e.Fullscreen, ev.Fullscreen)
	flag("notes", e.Notes, ev.Notes)
	flag("grid", e.Grid, ev.Grid)
	flag("quit", e.Quit, ev.Quit)
	return out
}
