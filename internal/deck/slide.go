package deck

import "encoding/json"

// Document is a whole deck. It is treated as immutable once handed to a
// renderer.
type Document struct {
	Title        string
	Subtitle     string
	Author       string
	Organization string
	Slides       []Slide
}

// Slide is one logical slide. The set of implementations is closed; see the
// *Slide types in this package.
type Slide interface {
	// Kind is the resolved layout. Unknown layouts report KindContent.
	Kind() Kind
	// Heading returns the slide title.
	Heading() string
	// Notes returns the speaker notes. Notes are never part of the visible body.
	Notes() string
	// Declared returns the layout string exactly as written in the source.
	Declared() string
	// Raw returns the source JSON object, or nil for slides built in code.
	Raw() json.RawMessage

	sealed()
}

// Base holds the fields every variant carries.
type Base struct {
	Title        string
	SpeakerNotes string
	Layout       string

	raw json.RawMessage
}

func (b Base) Heading() string      { return b.Title }
func (b Base) Notes() string        { return b.SpeakerNotes }
func (b Base) Declared() string     { return b.Layout }
func (b Base) Raw() json.RawMessage { return b.raw }
func (Base) sealed()                {}

// Item is a list entry, optionally tagged with a severity.
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Type        Severity `json:"type,omitempty"`
}

// Column is one side of a two-column or comparison slide.
type Column struct {
	Title string `json:"title"`
	Items []Item `json:"items,omitempty"`
}

// Track is one column of a three-column slide. Color names a palette token.
type Track struct {
	Title string   `json:"title"`
	Color string   `json:"color,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Table is tabular data. Rows may be shorter or longer than Headers.
type Table struct {
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// KeyInsight is the callout shared by most layouts.
type KeyInsight struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Problem struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

type Operation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Command     string `json:"command,omitempty"`
}

type TitleSlide struct {
	Base
	Subtitle string
}

type AgendaSlide struct {
	Base
	Subtitle string
	Items    []Item
}

type PainPointsSlide struct {
	Base
	Subtitle   string
	Items      []Item
	KeyInsight *KeyInsight
}

type TwoColumnSlide struct {
	Base
	Left       Column
	Right      Column
	KeyInsight *KeyInsight
}

// ComparisonSlide shares its shape with TwoColumnSlide but reads as
// before (Left) versus after (Right).
type ComparisonSlide struct {
	Base
	Left       Column
	Right      Column
	KeyInsight *KeyInsight
}

type ThreeColumnSlide struct {
	Base
	Columns    []Track
	KeyInsight *KeyInsight
}

type TableSlide struct {
	Base
	Table      Table
	KeyInsight *KeyInsight
}

type ProblemsSlide struct {
	Base
	Problems   []Problem
	KeyInsight *KeyInsight
}

type OperationsSlide struct {
	Base
	Operations []Operation
	KeyInsight *KeyInsight
}

type TakeawaysSlide struct {
	Base
	Items      []Item
	KeyInsight *KeyInsight
}

type QuestionsSlide struct {
	Base
	Subtitle string
	Content  string
}

type ArchitectureSlide struct {
	Base
	Content    string
	Items      []Item
	KeyInsight *KeyInsight
}

type MonitoringSlide struct {
	Base
	Items      []Item
	KeyInsight *KeyInsight
}

// ContentSlide is the fallback variant: a title and free text.
type ContentSlide struct {
	Base
	Content string
}

func (*TitleSlide) Kind() Kind        { return KindTitle }
func (*AgendaSlide) Kind() Kind       { return KindAgenda }
func (*PainPointsSlide) Kind() Kind   { return KindPainPoints }
func (*TwoColumnSlide) Kind() Kind    { return KindTwoColumn }
func (*ComparisonSlide) Kind() Kind   { return KindComparison }
func (*ThreeColumnSlide) Kind() Kind  { return KindThreeColumn }
func (*TableSlide) Kind() Kind        { return KindTable }
func (*ProblemsSlide) Kind() Kind     { return KindProblems }
func (*OperationsSlide) Kind() Kind   { return KindOperations }
func (*TakeawaysSlide) Kind() Kind    { return KindTakeaways }
func (*QuestionsSlide) Kind() Kind    { return KindQuestions }
func (*ArchitectureSlide) Kind() Kind { return KindArchitecture }
func (*MonitoringSlide) Kind() Kind   { return KindMonitoring }
func (*ContentSlide) Kind() Kind      { return KindContent }

// KeyInsightOf returns the slide's callout, or nil for layouts without one.
func KeyInsightOf(s Slide) *KeyInsight {
	switch v := s.(type) {
	case *PainPointsSlide:
		return v.KeyInsight
	case *TwoColumnSlide:
		return v.KeyInsight
	case *ComparisonSlide:
		return v.KeyInsight
	case *ThreeColumnSlide:
		return v.KeyInsight
	case *TableSlide:
		return v.KeyInsight
	case *ProblemsSlide:
		return v.KeyInsight
	case *OperationsSlide:
		return v.KeyInsight
	case *TakeawaysSlide:
		return v.KeyInsight
	case *ArchitectureSlide:
		return v.KeyInsight
	case *MonitoringSlide:
		return v.KeyInsight
	}
	return nil
}
