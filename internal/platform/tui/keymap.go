package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input and host
// controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Control is a host-level command that never reaches the resolver.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlPause
	ControlRestart
	ControlBack
	ControlScreenshot
)

// MapKey translates a key message to a semantic game key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case "w", "up", "k":
		return core.KeyUp, true
	case "s", "down", "j":
		return core.KeyDown, true
	case "a", "left", "h":
		return core.KeyLeft, true
	case "d", "right", "l":
		return core.KeyRight, true
	case " ", "space":
		return core.KeyAction, true
	case "enter":
		return core.KeyConfirm, true
	}
	return "", false
}

// MapControl translates a key message to a host control.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "p":
		return ControlPause
	case "r":
		return ControlRestart
	case "b", "esc":
		return ControlBack
	case "ctrl+s":
		return ControlScreenshot
	}
	return ControlNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionFavorite
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "f":
		return MenuActionFavorite
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
