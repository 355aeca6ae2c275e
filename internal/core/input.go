package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionConfirm           // Enter, Space - start a session from the menu or game over screen
	ActionLeft              // Left, A, H - nudge the held item left (grabs one if none held)
	ActionRight             // Right, D, L - nudge the held item right (grabs one if none held)
	ActionDrop              // Down, S, J - release the held item
	ActionRestart           // R - start over
	ActionScoreboard        // Tab - open the high score table
	ActionMute              // M - toggle sound
	ActionBack              // Esc, B - leave the current screen
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionMute:
		return "Mute"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample in screen cell coordinates.
// The game translates cells into its own play-area coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}
