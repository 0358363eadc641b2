package layout

import (
	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

// Algorithm renders one page of a particular layout kind.
type Algorithm interface {
	Kind() deck.Kind
	Render(page Page, ctx Context) RenderedSlide
}

var (
	titleLayout        = titleAlgorithm{}
	agendaLayout       = agendaAlgorithm{}
	painPointsLayout   = painPointsAlgorithm{}
	twoColumnLayout    = columnsAlgorithm{kind: deck.KindTwoColumn}
	comparisonLayout   = columnsAlgorithm{kind: deck.KindComparison}
	threeColumnLayout  = threeColumnAlgorithm{}
	tableLayout        = tableAlgorithm{}
	problemsLayout     = problemsAlgorithm{}
	operationsLayout   = operationsAlgorithm{}
	takeawaysLayout    = takeawaysAlgorithm{}
	questionsLayout    = questionsAlgorithm{}
	architectureLayout = architectureAlgorithm{}
	monitoringLayout   = monitoringAlgorithm{}
	contentLayout      = contentAlgorithm{}
)

// Resolve picks the algorithm for a slide. It is total: slides of unknown
// kind, and nil, get the content layout.
func Resolve(s deck.Slide) Algorithm {
	switch s.(type) {
	case *deck.TitleSlide:
		return titleLayout
	case *deck.AgendaSlide:
		return agendaLayout
	case *deck.PainPointsSlide:
		return painPointsLayout
	case *deck.TwoColumnSlide:
		return twoColumnLayout
	case *deck.ComparisonSlide:
		return comparisonLayout
	case *deck.ThreeColumnSlide:
		return threeColumnLayout
	case *deck.TableSlide:
		return tableLayout
	case *deck.ProblemsSlide:
		return problemsLayout
	case *deck.OperationsSlide:
		return operationsLayout
	case *deck.TakeawaysSlide:
		return takeawaysLayout
	case *deck.QuestionsSlide:
		return questionsLayout
	case *deck.ArchitectureSlide:
		return architectureLayout
	case *deck.MonitoringSlide:
		return monitoringLayout
	default:
		return contentLayout
	}
}
