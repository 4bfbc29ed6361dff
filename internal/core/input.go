package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the movement step for a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// KeyEvent is a key-down reported by a terminal backend. Code uses the
// same names as Bubble Tea key strings ("left", "q", "esc", "ctrl+c").
type KeyEvent struct {
	Code string
}

// Key creates a key event for code.
func Key(code string) KeyEvent {
	return KeyEvent{Code: code}
}

// String returns the key code. It lets key bindings match events directly.
func (e KeyEvent) String() string {
	return e.Code
}
