package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	First      key.Binding
	Last       key.Binding
	Fullscreen key.Binding
	Escape     key.Binding
	Grid       key.Binding
	Notes      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:       key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/l/space", "next")),
		First:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
		Grid:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "overview")),
		Notes:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Fullscreen, k.Grid, k.Notes, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Fullscreen, k.Escape, k.Grid, k.Notes},
		{k.Up, k.Down, k.Select, k.Quit},
	}
}
