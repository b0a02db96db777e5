// Package tui provides the Bubble Tea driver for the puzzle.
// It owns the terminal loop, maps keys and mouse clicks to session calls and
// schedules the elapsed-time ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one elapsed-time tick. Epoch is the session timer token the tick
// was scheduled under; the session drops ticks from stale epochs.
type TickMsg struct {
	Epoch uint64
	At    time.Time
}

// tickCmd returns a command that delivers a TickMsg after one time unit.
func tickCmd(unit time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(unit, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}
