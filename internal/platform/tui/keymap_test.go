package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop},
		{"r", runeKey('r'), core.ActionRestart},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard},
		{"m", runeKey('m'), core.ActionMute},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.PointerKind
		mapped bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerDown, true},
		{"left drag", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMove, true},
		{"release", tea.MouseMsg{X: 5, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerUp, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.PointerCancel, true},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg)
			if ok != tt.mapped {
				t.Fatalf("MapMouse mapped = %v, want %v", ok, tt.mapped)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", ev.Kind, tt.want)
			}
			if ev.X != tt.msg.X || ev.Y != tt.msg.Y {
				t.Errorf("position = (%d,%d), want (%d,%d)", ev.X, ev.Y, tt.msg.X, tt.msg.Y)
			}
		})
	}
}
