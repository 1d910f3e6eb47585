// Package tui provides the Bubble Tea shell around the breakout simulation.
// It owns the tick loop, maps keyboard and mouse input to actions, renders
// the screen buffer with colours and plays sounds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after delay. The delay comes from the
// previous step, so the pace follows the score.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
