// Package tui runs registered games in the terminal with Bubble Tea: the
// fixed-rate tick loop, key and mouse mapping, the menu, the scoreboard and
// the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the wall time of one tick. Non-positive rates use 60.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
