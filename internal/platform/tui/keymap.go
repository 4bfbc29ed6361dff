package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixelterm/internal/core"
)

// screenshotKey saves the current frame instead of reaching the driver.
const screenshotKey = "ctrl+s"

// KeyMapper translates Bubble Tea key messages to driver key events.
// This centralizes key handling and makes it testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey converts a key message to a key event. Bubble Tea's key names
// ("up", "ctrl+c", "q") are the codes the driver's bindings match against.
// local is true for keys the backend handles itself.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.KeyEvent, local bool) {
	code := msg.String()
	if code == screenshotKey {
		return core.KeyEvent{}, true
	}
	return core.Key(code), false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
