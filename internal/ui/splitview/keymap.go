package splitview

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextPane    key.Binding
	PrevPane    key.Binding
	Toggle      key.Binding
	Reset       key.Binding
	Orientation key.Binding
	Presets     key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPane: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space", "collapse/expand pane"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset sizes"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "flip orientation"),
		),
		Presets: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "presets"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
