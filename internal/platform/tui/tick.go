// Package tui provides the Bubble Tea backend for the frame driver.
// It handles the terminal UI loop, key translation and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one driver step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelay is the time left in a frame after elapsed has been spent.
// Overruns schedule the next tick immediately.
func frameDelay(frame, elapsed time.Duration) time.Duration {
	if wait := frame - elapsed; wait > 0 {
		return wait
	}
	return 0
}
