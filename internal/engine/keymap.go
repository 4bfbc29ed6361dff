package engine

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/pixelterm/internal/core"
)

// KeyMap defines the key bindings the frame driver understands.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns arrow, WASD and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit},
	}
}

// Action translates a key event to an action. Unbound keys map to ActionNone.
func (k KeyMap) Action(ev core.KeyEvent) core.Action {
	switch {
	case key.Matches(ev, k.Quit):
		return core.ActionQuit
	case key.Matches(ev, k.Left):
		return core.ActionLeft
	case key.Matches(ev, k.Right):
		return core.ActionRight
	case key.Matches(ev, k.Up):
		return core.ActionUp
	case key.Matches(ev, k.Down):
		return core.ActionDown
	}
	return core.ActionNone
}
