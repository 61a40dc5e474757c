package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the demo's key bindings. It implements help.KeyMap.
type keyMap struct {
	Open    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open widget"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "confirm"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Confirm, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Confirm, k.Dismiss},
		{k.Help, k.Quit},
	}
}
