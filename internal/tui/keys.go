package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	ClockOut  key.Binding
	ToggleTax key.Binding
	NewShift  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ClockOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "clock out"),
		),
		ToggleTax: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle tax"),
		),
		NewShift: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new shift"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
