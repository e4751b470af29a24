package tui

import (
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m MainModel) View() string {
	var body string
	if m.machine.View() == timer.ViewCountdown {
		body = m.renderCountdown()
	} else {
		body = m.renderSetup()
	}

	sections := []string{m.renderHeader(), body}
	if m.showHistory {
		sections = append(sections, m.renderHistory())
	}
	sections = append(sections, m.renderFooter())

	var lines []string
	for _, s := range sections {
		lines = append(lines, m.center(s))
	}
	return m.theme.Base.Render(strings.Join(lines, "\n\n"))
}

func (m MainModel) center(block string) string {
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, block)
}

// contentWidth is the width left inside the base margins.
func (m MainModel) contentWidth() int {
	w := m.width - m.theme.Base.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

func (m MainModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m MainModel) renderHeader() string {
	return m.theme.Header.Render("Timer") + m.theme.Dim.Render("  "+versionLabel())
}

func (m MainModel) renderSetup() string {
	d := m.machine.Display()
	digits := m.theme.Digits
	if m.machine.Digits() == "" {
		digits = m.theme.DigitsDim
	}
	unit := m.theme.Unit
	display := digits.Render(d.Hours) + unit.Render("h ") +
		digits.Render(d.Minutes) + unit.Render("m ") +
		digits.Render(d.Seconds) + unit.Render("s")
	display += "  " + m.theme.Dim.Render("⌫")

	ruleWidth := ansi.StringWidth(display)
	rule := m.theme.Rule.Render(strings.Repeat("─", ruleWidth))

	return lipgloss.JoinVertical(lipgloss.Center, display, rule, "", m.renderKeypad())
}

func (m MainModel) renderKeypad() string {
	var rows []string
	for r, row := range keypadGrid {
		var cells []string
		for c, cell := range row {
			cells = append(cells, m.renderKey(r, c, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m MainModel) renderKey(row, col, cell int) string {
	focused := m.cursor.row == row && m.cursor.col == col
	switch {
	case cell < 0:
		return m.theme.Key.Render(" ")
	case cell == startCell:
		if !m.machine.StartEnabled() {
			return ""
		}
		style := m.theme.Button
		if focused {
			style = style.Inherit(m.theme.KeyFocused).Padding(0, 2)
		}
		return style.Render(keypadLabels[cell])
	case focused:
		return m.theme.KeyFocused.Render(keypadLabels[cell])
	default:
		return m.theme.Key.Render(keypadLabels[cell])
	}
}

func (m MainModel) renderCountdown() string {
	engine := m.machine.Engine()
	sweep := engine.SweepAngle()
	label := timer.FormatLabel(engine.Remaining())

	var dial string
	if m.compact() {
		dial = m.theme.Label.Render(label)
	} else {
		dial = renderRing(m.theme, config.RingRadius, sweep, label)
	}
	bar := m.progress.ViewAs(util.ClampFloat(sweep/360, 0, 1))

	var status string
	switch {
	case engine.State() == timer.StateFinished:
		status = m.theme.Finished.Render("Finished")
	case engine.Paused():
		status = m.theme.Paused.Render("Paused")
	default:
		status = m.theme.Dim.Render("Running")
	}
	status += m.theme.Dim.Render("  pause: " + string(engine.PauseMode()))

	return lipgloss.JoinVertical(lipgloss.Center, dial, "", bar, status)
}

func (m MainModel) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("History"))
	b.WriteString("\n")
	if len(m.history) == 0 {
		b.WriteString(m.theme.Dim.Render("No sessions yet"))
		return b.String()
	}
	limit := m.contentWidth()
	for _, s := range m.history {
		b.WriteString(truncateLabel(FormatSession(s), limit))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render(truncateLabel(FormatStats(m.stats), limit)))
	return b.String()
}

func (m MainModel) renderFooter() string {
	help := m.keys.HelpForView(m.machine.View())
	if m.width > 0 {
		help = truncateLabel(help, m.contentWidth())
	}
	lines := []string{m.theme.Dim.Render(help)}
	switch {
	case m.err != nil:
		lines = append(lines, m.theme.Error.Render("Error: "+m.err.Error()))
	case m.Message != "":
		lines = append(lines, m.theme.Unit.Render(m.Message))
	}
	return strings.Join(lines, "\n")
}
