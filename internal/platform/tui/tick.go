// Package tui provides the Bubble Tea integration for the sorting game.
// It handles the terminal UI loop, input mapping, and session drivers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg triggers one simulation frame. Epoch ties it to the session that
// scheduled it; frames from an older epoch are dropped.
type FrameMsg struct {
	Epoch int
	Time  time.Time
}

// SecondMsg triggers one countdown step for the session of Epoch.
type SecondMsg struct {
	Epoch int
	Time  time.Time
}

// frameCmd returns a command that sends a frame message at the given rate.
func frameCmd(epoch, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Epoch: epoch, Time: t}
	})
}

// secondCmd returns a command that sends a countdown message in one second.
func secondCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg{Epoch: epoch, Time: t}
	})
}
