// Package tui runs a game in the terminal with Bubble Tea. It owns the tick
// loop, maps keys to game actions and converts screen buffers to styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the wall-clock time between ticks. Rates below 1 fall back to 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
