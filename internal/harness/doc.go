// Package harness replays keyboard scenarios against the terminal viewer.
//
// A scenario names a document, a terminal size and a list of key presses.
// The harness compiles the document, feeds each key to viewer.Model and
// records the state after every press. The resulting trace is checked
// against per-step expectations, scenario-level assertions and optionally
// a golden snapshot.
//
// # Scenario Format
//
//	name: walk_through
//	description: "Arrow keys clamp at both ends"
//	deck: ../decks/drill.json
//	closable: true
//	size: { width: 100, height: 30 }
//	steps:
//	  - keys: [right, right]
//	    expect:
//	      slide: 3
//	      title: Hosts
//	      visible: ["3/5"]
//	assertions:
//	  - type: trace_order
//	    titles: [Agenda, Hosts]
//	  - type: final_state
//	    expect: { slide: 3, fullscreen: false }
//
// Key names are bubbletea key strings: right, left, home, end, esc, enter,
// up, down, space, ctrl+c, or a single printable character.
//
// # Assertion Types
//
//   - trace_contains: some step landed on the titled slide
//   - trace_order: titles were visited in this order
//   - trace_count: the titled slide was shown after exactly N presses
//   - final_state: the viewer ended in the expected state
//
// Golden snapshots live in a golden directory next to the scenario files,
// named <name>.golden. Regenerate with
//
//	go test ./internal/harness -update
package harness
