package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	notesHeight   = 6
)

var (
	pal = palette.Default()

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Header().Foreground.Hex())).
			Background(lipgloss.Color(pal.Header().Background.Hex())).
			Bold(true).
			Padding(0, 1)

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Tone(palette.Muted).Foreground.Hex()))

	notesStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(pal.Tone(palette.Teal).Background.Hex())).
			Padding(0, 1)

	notesTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Tone(palette.Teal).Background.Hex())).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Tone(palette.Teal).Foreground.Hex())).
			Background(lipgloss.Color(pal.Tone(palette.Teal).Background.Hex())).
			Bold(true)
)

// Model is the bubbletea front end of a Viewer.
type Model struct {
	viewer *Viewer
	keys   keyMap
	help   help.Model
	pages  paginator.Model

	width, height int
	notes         bool
	grid          bool
	cursor        int
	quitting      bool
}

// NewModel wraps v for use with tea.NewProgram.
func NewModel(v *Viewer) Model {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.SetTotalPages(v.TotalSlides())
	p.Page = v.CurrentSlideIndex()

	return Model{
		viewer: v,
		keys:   defaultKeys(),
		help:   help.New(),
		pages:  p,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.grid {
			cmd = m.updateGrid(msg)
		} else {
			cmd = m.updateSlide(msg)
		}
		m.pages.Page = m.viewer.CurrentSlideIndex()
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSlide(msg tea.KeyMsg) tea.Cmd {
	v := m.viewer
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Prev):
		v.Prev()
	case key.Matches(msg, m.keys.Next):
		v.Next()
	case key.Matches(msg, m.keys.First):
		v.JumpTo(0)
	case key.Matches(msg, m.keys.Last):
		v.JumpTo(v.TotalSlides() - 1)
	case key.Matches(msg, m.keys.Fullscreen):
		v.ToggleFullscreen()
		if v.IsFullscreen() {
			return tea.EnterAltScreen
		}
		return tea.ExitAltScreen
	case key.Matches(msg, m.keys.Escape):
		wasFullscreen := v.IsFullscreen()
		if v.Escape() {
			m.quitting = true
			return tea.Quit
		}
		if wasFullscreen {
			return tea.ExitAltScreen
		}
	case key.Matches(msg, m.keys.Grid):
		m.grid = true
		m.cursor = v.CurrentSlideIndex()
	case key.Matches(msg, m.keys.Notes):
		m.notes = !m.notes
	}
	return nil
}

func (m *Model) updateGrid(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
		m.cursor = min(m.cursor+1, max(m.viewer.TotalSlides()-1, 0))
	case key.Matches(msg, m.keys.Select):
		m.viewer.JumpTo(m.cursor)
		m.grid = false
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Grid):
		m.grid = false
	}
	return nil
}

// Viewer returns the navigation state the model drives.
func (m Model) Viewer() *Viewer { return m.viewer }

func (m Model) NotesVisible() bool { return m.notes }
func (m Model) GridOpen() bool     { return m.grid }
func (m Model) Quitting() bool     { return m.quitting }

// GridCursor is the highlighted row of the slide grid.
func (m Model) GridCursor() int { return m.cursor }

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.grid {
		return m.gridView()
	}

	var top, bottom []string
	if !m.viewer.IsFullscreen() {
		top = append(top, m.headerView())
	}
	if m.notes {
		bottom = append(bottom, m.notesView())
	}
	bottom = append(bottom, m.footerView())

	used := 0
	for _, s := range append(top, bottom...) {
		used += lipgloss.Height(s)
	}
	screen := Composite(m.viewer.Current(), m.width, max(m.height-used, 1))

	sections := append(top, screen.Render())
	return lipgloss.JoinVertical(lipgloss.Left, append(sections, bottom...)...)
}

func (m Model) headerView() string {
	title := m.viewer.Deck().Title
	if title == "" {
		title = "Untitled deck"
	}
	return headerStyle.Width(m.width).Render(title)
}

func (m Model) footerView() string {
	counter := counterStyle.Render(m.pages.View())
	if m.viewer.IsFullscreen() {
		return counter
	}
	return counter + "  " + m.help.View(m.keys)
}

func (m Model) notesView() string {
	notes := m.viewer.Notes()
	if notes == "" {
		notes = "(no notes)"
	}
	lines := wrap(strings.Split(notes, "\n"), max(m.width-4, 1))
	if len(lines) > notesHeight-3 {
		lines = lines[:notesHeight-3]
	}
	body := notesTitleStyle.Render("Speaker notes") + "\n" + strings.Join(lines, "\n")
	return notesStyle.Width(max(m.width-2, 1)).Render(body)
}

// gridView lists the slides, scrolled so the cursor row stays on screen
// between the header and the key hint.
func (m Model) gridView() string {
	d := m.viewer.Deck()
	header := headerStyle.Width(m.width).Render("Slides")
	hint := counterStyle.Render("↑/↓ select · enter open · esc back")

	visible := max(m.height-lipgloss.Height(header)-lipgloss.Height(hint), 1)
	first, last := gridWindow(len(d.Slides), m.cursor, visible)

	rows := []string{header}
	for i := first; i < last; i++ {
		s := d.Slides[i]
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%3d. %s  [%s]", i+1, title, s.Kind)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	rows = append(rows, hint)
	return strings.Join(rows, "\n")
}

// gridWindow returns the half-open range of n rows to show in a window of
// size rows, keeping cursor near the middle.
func gridWindow(n, cursor, size int) (first, last int) {
	if n <= size {
		return 0, n
	}
	first = min(max(cursor-size/2, 0), n-size)
	return first, first + size
}
