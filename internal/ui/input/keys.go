package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the package browser
type KeyMap struct {
	Down     key.Binding
	Up       key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings: arrow keys (or hjkl) to move,
// q, Q, Esc or Ctrl+C to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next package"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous package"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
