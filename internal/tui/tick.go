package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries one countdown tick back into Update.
type tickMsg struct {
	gen uint64
	at  time.Time
}

// scheduleTick arms the loop ticker and returns the command that fires it,
// or nil when no fire is due.
func (m MainModel) scheduleTick() tea.Cmd {
	gen, ok := m.ticker.Arm()
	if !ok {
		return nil
	}
	return tea.Tick(m.ticker.Interval(), func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (m MainModel) handleTick(msg tickMsg) (MainModel, tea.Cmd) {
	m.ticker.Fire(msg.gen, msg.at)
	return m, nil
}
