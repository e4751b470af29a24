package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	setupOnly     = []timer.ViewState{timer.ViewSetup}
	countdownOnly = []timer.ViewState{timer.ViewCountdown}
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Keys:        []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Handler:     handleDigit,
		Help:        "0-9",
		Description: "digits",
		Views:       setupOnly,
		Priority:    10,
	})
	r.Register(KeyBinding{Keys: []string{"backspace"}, Handler: handleBackspace, Help: "⌫", Description: "delete", Views: setupOnly, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"up", "down", "left", "right"}, Handler: handleKeypadMove, Views: setupOnly, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: handleKeypadEnter, Views: setupOnly, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"s"}, Handler: handleStart, Help: "s", Description: "start", Views: setupOnly, Priority: 10})

	r.Register(KeyBinding{Keys: []string{"x"}, Handler: handleStop, Help: "x", Description: "stop", Views: countdownOnly, Priority: 10})
	r.Register(KeyBinding{Keys: []string{" ", "p"}, Handler: handlePause, Help: "space", Description: "pause", Views: countdownOnly, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Help: "r", Description: "reset", Views: countdownOnly, Priority: 10})

	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleThemeCycle, Help: "t", Description: "theme"})
	r.Register(KeyBinding{Keys: []string{"M"}, Handler: handlePauseModeToggle, Help: "M", Description: "pause mode"})
	r.Register(KeyBinding{Keys: []string{"h"}, Handler: handleHistoryToggle, Help: "h", Description: "history"})
	r.Register(KeyBinding{Keys: []string{"ctrl+e"}, Handler: handleReportExport, Help: "^e", Description: "report"})
	r.Register(KeyBinding{Keys: []string{"q", "ctrl+c"}, Handler: handleQuit, Help: "q", Description: "quit", Priority: -1})
	return r
}

func handleDigit(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	m.machine.PressDigit(rune(key[0]))
	return m, nil, true
}

func handleBackspace(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.machine.Backspace()
	if m.cursor.cell() == startCell && !m.machine.StartEnabled() {
		m.cursor = m.cursor.move(-1, 0)
	}
	return m, nil, true
}

func handleKeypadMove(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	next := m.cursor
	switch key {
	case "up":
		next = m.cursor.move(-1, 0)
	case "down":
		next = m.cursor.move(1, 0)
	case "left":
		next = m.cursor.move(0, -1)
	case "right":
		next = m.cursor.move(0, 1)
	}
	// Start is hidden until a digit has been entered.
	if next.cell() == startCell && !m.machine.StartEnabled() {
		return m, nil, true
	}
	m.cursor = next
	return m, nil, true
}

func handleKeypadEnter(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.reportStartErr(m.cursor.activate(m.machine))
	return m, nil, true
}

func handleStart(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.reportStartErr(m.machine.Start())
	return m, nil, true
}

func (m *MainModel) reportStartErr(err error) {
	switch {
	case err == nil:
		m.cursor = keypadCursor{}
	case errors.Is(err, timer.ErrStartDisabled):
		m.Message = "Enter a duration first"
	default:
		m.err = err
	}
}

func handleStop(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.machine.Stop()
	return m, nil, true
}

func handlePause(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if _, err := m.machine.TogglePause(); err != nil {
		m.err = err
	}
	return m, nil, true
}

func handleReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if err := m.machine.Reset(); err != nil {
		m.err = err
	}
	return m, nil, true
}

func handleThemeCycle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.settings.Theme = nextThemeName(m.settings.Theme)
	m.theme = ThemeByName(m.settings.Theme)
	m.persistSetting(config.SettingTheme, m.settings.Theme)
	m.Message = "Theme: " + m.theme.Name
	return m, nil, true
}

func handlePauseModeToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	mode := timer.PauseDisplay
	if m.machine.Engine().PauseMode() == timer.PauseDisplay {
		mode = timer.PauseSuspend
	}
	m.machine.Engine().SetPauseMode(mode)
	m.settings.PauseMode = string(mode)
	m.persistSetting(config.SettingPauseMode, m.settings.PauseMode)
	m.Message = "Pause mode: " + m.settings.PauseMode
	return m, nil, true
}

func handleHistoryToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.showHistory = !m.showHistory
	if m.showHistory {
		m.refreshHistory()
	}
	return m, nil, true
}

func handleReportExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.store == nil {
		m.Message = "History is disabled"
		return m, nil, true
	}
	path, err := GenerateHistoryReport(m.ctx, m.store, m.reportDir, m.now())
	if err != nil {
		util.LogError("export report", err)
		m.Message = fmt.Sprintf("Export failed: %v", err)
	} else {
		m.Message = fmt.Sprintf("Report saved: %s", path)
	}
	return m, nil, true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.machine.Stop()
	return m, tea.Quit, true
}

func (m *MainModel) persistSetting(key, value string) {
	if m.store == nil {
		return
	}
	if err := m.store.SetSetting(m.ctx, key, value); err != nil {
		util.LogError("save setting "+key, err)
		m.err = err
	}
}
