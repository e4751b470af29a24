package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. The timer.Machine is the source of
// truth for which view is shown; the model only renders it and routes keys.
type MainModel struct {
	ctx         context.Context
	now         func() time.Time
	store       Store
	settings    config.Settings
	ticker      *timer.LoopTicker
	machine     *timer.Machine
	recorder    *SessionRecorder
	keys        *HandlerRegistry
	progress    progress.Model
	theme       Theme
	cursor      keypadCursor
	history     []models.Session
	stats       models.SessionStats
	showHistory bool
	reportDir   string
	err         error
	Message     string
	width       int
	height      int
}

// NewMainModel wires the countdown machine to a loop ticker and, when store is
// non-nil, records every session in it.
func NewMainModel(ctx context.Context, store Store, settings config.Settings) MainModel {
	return newMainModel(ctx, store, settings, time.Now)
}

func newMainModel(ctx context.Context, store Store, settings config.Settings, now func() time.Time) MainModel {
	ticker := timer.NewLoopTicker(settings.TickInterval, now)
	engine := timer.NewEngine(ticker, timer.ParsePauseMode(settings.PauseMode))
	recorder := NewSessionRecorder(ctx, store, now)
	engine.Subscribe(recorder.Handle)

	m := MainModel{
		ctx:       ctx,
		now:       now,
		store:     store,
		settings:  settings,
		ticker:    ticker,
		machine:   timer.NewMachine(engine),
		recorder:  recorder,
		keys:      newKeyRegistry(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:     ThemeByName(settings.Theme),
		reportDir: util.ReportsDir(config.AppName),
	}
	m.progress.Width = config.TargetProgressWidth
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.SetWindowTitle("countdown")
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = m.handleWindowSize(msg)
	case tickMsg:
		m, cmd = m.handleTick(msg)
	case tea.KeyMsg:
		// Transient messages clear on the next key press.
		m.err = nil
		m.Message = ""
		var handled bool
		m, cmd, handled = m.keys.Handle(m, msg.String())
		if !handled {
			cmd = nil
		}
	}

	if m.recorder.TakeDirty() && m.showHistory {
		m.refreshHistory()
	}
	return m, tea.Batch(cmd, m.scheduleTick())
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < target+8 {
			target = m.width - 8
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.TargetProgressWidth)
	}
	return m, nil
}

func (m *MainModel) refreshHistory() {
	if m.store == nil {
		m.history, m.stats = nil, models.SessionStats{}
		return
	}
	history, err := m.store.ListSessions(m.ctx, config.HistoryPaneRows)
	if err != nil {
		util.LogError("list sessions", err)
		m.err = err
		return
	}
	stats, err := m.store.SessionStats(m.ctx)
	if err != nil {
		util.LogError("session stats", err)
		m.err = err
		return
	}
	m.history, m.stats = history, stats
}

// Machine exposes the countdown state machine.
func (m MainModel) Machine() *timer.Machine { return m.machine }
