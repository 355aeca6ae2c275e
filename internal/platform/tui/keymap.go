package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "enter", " ", "space":
		return core.ActionConfirm
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "down", "s", "j":
		return core.ActionDrop
	case "r":
		return core.ActionRestart
	case "tab":
		return core.ActionScoreboard
	case "m":
		return core.ActionMute
	case "esc", "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to a pointer event in screen cells.
// Only the left button drags; any other button press cancels the drag.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Kind = core.PointerDown
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
			return ev, false
		default:
			ev.Kind = core.PointerCancel
		}
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
	default:
		return ev, false
	}
	return ev, true
}
