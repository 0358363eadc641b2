package deck

import "encoding/json"

// documentWire is the JSON shape of a Document.
type documentWire struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Author       string            `json:"author,omitempty"`
	Organization string            `json:"organization,omitempty"`
	Slides       []json.RawMessage `json:"slides"`
}

// slideWire is the normalized JSON shape of a slide: only the fields its
// layout reads.
type slideWire struct {
	Layout       string      `json:"layout,omitempty"`
	Title        string      `json:"title,omitempty"`
	Subtitle     string      `json:"subtitle,omitempty"`
	Content      string      `json:"content,omitempty"`
	LeftColumn   *Column     `json:"leftColumn,omitempty"`
	RightColumn  *Column     `json:"rightColumn,omitempty"`
	Columns      []Track     `json:"columns,omitempty"`
	Items        []Item      `json:"items,omitempty"`
	Problems     []Problem   `json:"problems,omitempty"`
	Operations   []Operation `json:"operations,omitempty"`
	TableData    *Table      `json:"tableData,omitempty"`
	KeyInsight   *KeyInsight `json:"keyInsight,omitempty"`
	SpeakerNotes string      `json:"speakerNotes,omitempty"`
}

// MarshalJSON re-encodes the document. Slides decoded from JSON are written
// back verbatim, so fields ignored by their layout survive the round trip.
func (d Document) MarshalJSON() ([]byte, error) {
	return d.marshal(true)
}

// Normalized encodes the document from its decoded fields only, dropping
// anything a layout does not read.
func (d Document) Normalized() ([]byte, error) {
	return d.marshal(false)
}

func (d Document) marshal(preserve bool) ([]byte, error) {
	w := documentWire{
		Title:        d.Title,
		Subtitle:     d.Subtitle,
		Author:       d.Author,
		Organization: d.Organization,
		Slides:       make([]json.RawMessage, 0, len(d.Slides)),
	}
	for _, s := range d.Slides {
		if s == nil {
			w.Slides = append(w.Slides, json.RawMessage("null"))
			continue
		}
		if raw := s.Raw(); preserve && len(raw) > 0 {
			w.Slides = append(w.Slides, raw)
			continue
		}
		b, err := json.Marshal(wireOf(s))
		if err != nil {
			return nil, err
		}
		w.Slides = append(w.Slides, b)
	}
	return json.Marshal(w)
}

func wireOf(s Slide) slideWire {
	w := slideWire{
		Layout:       s.Declared(),
		Title:        s.Heading(),
		SpeakerNotes: s.Notes(),
		KeyInsight:   KeyInsightOf(s),
	}
	if w.Layout == "" && s.Kind() != KindContent {
		w.Layout = string(s.Kind())
	}
	switch v := s.(type) {
	case *TitleSlide:
		w.Subtitle = v.Subtitle
	case *AgendaSlide:
		w.Subtitle, w.Items = v.Subtitle, v.Items
	case *PainPointsSlide:
		w.Subtitle, w.Items = v.Subtitle, v.Items
	case *TwoColumnSlide:
		w.LeftColumn, w.RightColumn = columnPtr(v.Left), columnPtr(v.Right)
	case *ComparisonSlide:
		w.LeftColumn, w.RightColumn = columnPtr(v.Left), columnPtr(v.Right)
	case *ThreeColumnSlide:
		w.Columns = v.Columns
	case *TableSlide:
		if len(v.Table.Headers) > 0 || len(v.Table.Rows) > 0 {
			t := Table{Headers: v.Table.Headers, Rows: make([][]string, len(v.Table.Rows))}
			for i, row := range v.Table.Rows {
				if row == nil {
					row = []string{}
				}
				t.Rows[i] = row
			}
			w.TableData = &t
		}
	case *ProblemsSlide:
		w.Problems = v.Problems
	case *OperationsSlide:
		w.Operations = v.Operations
	case *TakeawaysSlide:
		w.Items = v.Items
	case *QuestionsSlide:
		w.Subtitle, w.Content = v.Subtitle, v.Content
	case *ArchitectureSlide:
		w.Content, w.Items = v.Content, v.Items
	case *MonitoringSlide:
		w.Items = v.Items
	case *ContentSlide:
		w.Content = v.Content
	}
	return w
}

func columnPtr(c Column) *Column {
	if c.Title == "" && len(c.Items) == 0 {
		return nil
	}
	return &c
}
