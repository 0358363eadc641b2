package deck

import "strings"

// Kind is the layout discriminant of a slide.
type Kind string

const (
	KindTitle        Kind = "title"
	KindAgenda       Kind = "agenda"
	KindPainPoints   Kind = "pain-points"
	KindTwoColumn    Kind = "two-column"
	KindComparison   Kind = "comparison"
	KindThreeColumn  Kind = "three-column"
	KindTable        Kind = "table"
	KindProblems     Kind = "problems"
	KindOperations   Kind = "operations"
	KindTakeaways    Kind = "takeaways"
	KindQuestions    Kind = "questions"
	KindArchitecture Kind = "architecture"
	KindMonitoring   Kind = "monitoring"

	// KindContent is the fallback for missing or unrecognized layouts.
	KindContent Kind = "content"
)

// Kinds lists the thirteen declarable layouts in a stable order.
var Kinds = []Kind{
	KindTitle,
	KindAgenda,
	KindPainPoints,
	KindTwoColumn,
	KindComparison,
	KindThreeColumn,
	KindTable,
	KindProblems,
	KindOperations,
	KindTakeaways,
	KindQuestions,
	KindArchitecture,
	KindMonitoring,
}

var knownKinds = func() map[Kind]bool {
	m := make(map[Kind]bool, len(Kinds)+1)
	for _, k := range Kinds {
		m[k] = true
	}
	m[KindContent] = true
	return m
}()

// NormalizeLayout lowercases a declared layout and folds '_' and spaces to '-'.
func NormalizeLayout(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

// ParseKind maps a declared layout to its Kind. Unknown or empty layouts
// return KindContent and false.
func ParseKind(s string) (Kind, bool) {
	k := Kind(NormalizeLayout(s))
	if knownKinds[k] {
		return k, true
	}
	return KindContent, false
}

// Severity color-codes items and callouts.
type Severity string

const (
	SeverityNone    Severity = ""
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// Severities lists every non-empty severity.
var Severities = []Severity{SeveritySuccess, SeverityWarning, SeverityDanger, SeverityInfo}

// ParseSeverity is case-insensitive. Unknown values map to SeverityNone.
func ParseSeverity(s string) Severity {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeveritySuccess, SeverityWarning, SeverityDanger, SeverityInfo:
		return sev
	default:
		return SeverityNone
	}
}
