package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError reports a document whose overall shape is unusable. Problems
// inside individual slides never produce a DecodeError.
type DecodeError struct {
	Field   string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Parse decodes a document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UnmarshalJSON decodes a document leniently.
func (d *Document) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return &DecodeError{Message: "document must be a JSON object"}
	}

	*d = Document{
		Title:        f.text("title"),
		Subtitle:     f.text("subtitle"),
		Author:       f.text("author"),
		Organization: f.text("organization"),
	}

	raw, ok := f["slides"]
	if !ok || isNull(raw) {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return &DecodeError{Field: "slides", Message: "must be a list"}
	}
	d.Slides = make([]Slide, 0, len(list))
	for _, r := range list {
		d.Slides = append(d.Slides, DecodeSlide(r))
	}
	return nil
}

// DecodeSlide turns one JSON value into a slide variant. It never fails:
// a bare string becomes a content slide with that title, anything else that
// is not an object becomes an empty content slide.
func DecodeSlide(raw json.RawMessage) Slide {
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		f = fields{}
		var title string
		if json.Unmarshal(raw, &title) == nil {
			f["title"] = raw
		}
	}

	base := Base{
		Title:        f.text("title"),
		SpeakerNotes: f.text("speakerNotes"),
		Layout:       f.text("layout"),
	}
	if len(raw) > 0 && !isNull(raw) {
		base.raw = append(json.RawMessage(nil), raw...)
	}

	kind, _ := ParseKind(base.Layout)
	switch kind {
	case KindTitle:
		return &TitleSlide{Base: base, Subtitle: f.text("subtitle")}
	case KindAgenda:
		return &AgendaSlide{Base: base, Subtitle: f.text("subtitle"), Items: f.items("items")}
	case KindPainPoints:
		return &PainPointsSlide{Base: base, Subtitle: f.text("subtitle"), Items: f.items("items"), KeyInsight: f.insight()}
	case KindTwoColumn:
		return &TwoColumnSlide{Base: base, Left: f.column("leftColumn"), Right: f.column("rightColumn"), KeyInsight: f.insight()}
	case KindComparison:
		return &ComparisonSlide{Base: base, Left: f.column("leftColumn"), Right: f.column("rightColumn"), KeyInsight: f.insight()}
	case KindThreeColumn:
		return &ThreeColumnSlide{Base: base, Columns: f.tracks("columns"), KeyInsight: f.insight()}
	case KindTable:
		return &TableSlide{Base: base, Table: f.table("tableData"), KeyInsight: f.insight()}
	case KindProblems:
		return &ProblemsSlide{Base: base, Problems: f.problems("problems"), KeyInsight: f.insight()}
	case KindOperations:
		return &OperationsSlide{Base: base, Operations: f.operations("operations"), KeyInsight: f.insight()}
	case KindTakeaways:
		return &TakeawaysSlide{Base: base, Items: f.items("items"), KeyInsight: f.insight()}
	case KindQuestions:
		return &QuestionsSlide{Base: base, Subtitle: f.text("subtitle"), Content: f.text("content")}
	case KindArchitecture:
		return &ArchitectureSlide{Base: base, Content: f.text("content"), Items: f.items("items"), KeyInsight: f.insight()}
	case KindMonitoring:
		return &MonitoringSlide{Base: base, Items: f.items("items"), KeyInsight: f.insight()}
	default:
		return &ContentSlide{Base: base, Content: f.text("content")}
	}
}

// fields is a JSON object whose members are decoded on demand. Every
// accessor returns the zero value when the member has the wrong shape.
type fields map[string]json.RawMessage

func (f fields) text(key string) string {
	return rawText(f[key])
}

func (f fields) object(key string) fields {
	var sub fields
	if err := json.Unmarshal(f[key], &sub); err != nil {
		return nil
	}
	return sub
}

func (f fields) list(key string) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(f[key], &list); err != nil {
		return nil
	}
	return list
}

func (f fields) items(key string) []Item {
	var out []Item
	for _, r := range f.list(key) {
		if it, ok := decodeItem(r); ok {
			out = append(out, it)
		}
	}
	return out
}

func (f fields) strings(key string) []string {
	var out []string
	for _, r := range f.list(key) {
		if s, ok := textOf(r); ok {
			out = append(out, s)
			continue
		}
		// Object entries contribute their title.
		var sub fields
		if json.Unmarshal(r, &sub) == nil && sub != nil {
			out = append(out, sub.text("title"))
		}
	}
	return out
}

func (f fields) column(key string) Column {
	sub := f.object(key)
	if sub == nil {
		return Column{}
	}
	return Column{Title: sub.text("title"), Items: sub.items("items")}
}

func (f fields) tracks(key string) []Track {
	var out []Track
	for _, r := range f.list(key) {
		var sub fields
		if err := json.Unmarshal(r, &sub); err != nil || sub == nil {
			continue
		}
		out = append(out, Track{
			Title: sub.text("title"),
			Color: strings.ToLower(sub.text("color")),
			Items: sub.strings("items"),
		})
	}
	return out
}

func (f fields) table(key string) Table {
	sub := f.object(key)
	if sub == nil {
		return Table{}
	}
	t := Table{Headers: sub.strings("headers")}
	for _, r := range sub.list("rows") {
		var cells []json.RawMessage
		if err := json.Unmarshal(r, &cells); err != nil {
			if s, ok := textOf(r); ok {
				t.Rows = append(t.Rows, []string{s})
			}
			continue
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = rawText(c)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (f fields) problems(key string) []Problem {
	var out []Problem
	for _, r := range f.list(key) {
		var sub fields
		if err := json.Unmarshal(r, &sub); err != nil || sub == nil {
			continue
		}
		out = append(out, Problem{Problem: sub.text("problem"), Solution: sub.text("solution")})
	}
	return out
}

func (f fields) operations(key string) []Operation {
	var out []Operation
	for _, r := range f.list(key) {
		var sub fields
		if err := json.Unmarshal(r, &sub); err != nil || sub == nil {
			continue
		}
		out = append(out, Operation{
			Title:       sub.text("title"),
			Description: sub.text("description"),
			Command:     sub.text("command"),
		})
	}
	return out
}

func (f fields) insight() *KeyInsight {
	sub := f.object("keyInsight")
	if sub == nil {
		return nil
	}
	ki := &KeyInsight{Title: sub.text("title"), Content: sub.text("content")}
	if ki.Title == "" && ki.Content == "" {
		return nil
	}
	return ki
}

func decodeItem(r json.RawMessage) (Item, bool) {
	if s, ok := textOf(r); ok {
		return Item{Title: s}, true
	}
	var sub fields
	if err := json.Unmarshal(r, &sub); err != nil || sub == nil {
		return Item{}, false
	}
	return Item{
		Title:       sub.text("title"),
		Description: sub.text("description"),
		Type:        ParseSeverity(sub.text("type")),
	}, true
}

// textOf accepts strings, numbers and booleans. Numbers keep their literal
// spelling.
func textOf(r json.RawMessage) (string, bool) {
	r = bytes.TrimSpace(r)
	if len(r) == 0 {
		return "", false
	}
	switch r[0] {
	case '"':
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			return "", false
		}
		return s, true
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(r, &b); err != nil {
			return "", false
		}
		return string(r), true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(r, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
	return "", false
}

func rawText(r json.RawMessage) string {
	s, _ := textOf(r)
	return s
}

func isNull(r json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(r), []byte("null"))
}
