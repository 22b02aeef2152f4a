package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg asks the playback model to pull the next frame. Ticks from an
// older schedule than the model's current one are dropped.
type tickMsg struct {
	seq int
	at  time.Time
}

// scheduleTick fires a tickMsg for seq after d
func scheduleTick(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}
