// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. The wall-clock timestamp
// is used to compute the frame delta fed into the simulation.
type TickMsg time.Time

// maxFrameDt caps the delta passed to the simulation, so a stalled
// terminal (suspend, slow SSH link) resumes without a physics jump.
const maxFrameDt = 0.1

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
