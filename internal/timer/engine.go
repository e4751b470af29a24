package timer

import (
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// PauseMode decides what pausing does to the tick source.
type PauseMode string

const (
	// PauseSuspend cancels the ticker and freezes the remaining time.
	PauseSuspend PauseMode = config.PauseModeSuspend
	// PauseDisplay only flips the paused flag; ticks keep arriving.
	PauseDisplay PauseMode = config.PauseModeDisplay
)

// ParsePauseMode maps a setting value to a PauseMode, defaulting to PauseSuspend.
func ParsePauseMode(v string) PauseMode {
	if v == config.PauseModeDisplay {
		return PauseDisplay
	}
	return PauseSuspend
}

// EventKind enumerates engine notifications.
type EventKind int

const (
	EventStarted EventKind = iota
	EventTick
	EventPaused
	EventResumed
	EventReset
	EventFinished
	EventStopped
)

// Event is a snapshot handed to listeners after every state change.
type Event struct {
	Kind       EventKind
	Duration   time.Duration
	Remaining  time.Duration
	SweepAngle float64
	Paused     bool
}

type Listener func(Event)

// Engine counts a fixed duration down to zero on an injected Ticker.
type Engine struct {
	ticker    Ticker
	mode      PauseMode
	duration  time.Duration
	remaining time.Duration
	sweep     float64
	state     State
	paused    bool
	listeners []Listener
}

func NewEngine(ticker Ticker, mode PauseMode) *Engine {
	if mode != PauseDisplay {
		mode = PauseSuspend
	}
	return &Engine{ticker: ticker, mode: mode}
}

// Subscribe registers l for every subsequent event.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

func (e *Engine) Duration() time.Duration  { return e.duration }
func (e *Engine) Remaining() time.Duration { return e.remaining }
func (e *Engine) SweepAngle() float64      { return e.sweep }
func (e *Engine) State() State             { return e.state }
func (e *Engine) Paused() bool             { return e.paused }
func (e *Engine) PauseMode() PauseMode     { return e.mode }

// SetPauseMode changes the mode used by later pause toggles.
func (e *Engine) SetPauseMode(mode PauseMode) {
	if mode != PauseDisplay {
		mode = PauseSuspend
	}
	e.mode = mode
}

// Start begins a countdown of d, replacing any countdown in progress.
func (e *Engine) Start(d time.Duration) {
	if d < 0 {
		d = 0
	}
	e.ticker.Cancel()
	e.duration = d
	e.remaining = d
	e.sweep = 0
	e.paused = false
	e.state = StateRunning
	e.ticker.Start(d, e.OnTick, e.OnFinish)
	e.emit(EventStarted)
}

// OnTick records the time left. Remaining never grows while running and is
// clamped to [0, Duration].
func (e *Engine) OnTick(remaining time.Duration) {
	if e.state != StateRunning {
		return
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > e.remaining {
		remaining = e.remaining
	}
	e.remaining = remaining
	e.sweep = SweepAngle(e.duration, remaining)
	e.emit(EventTick)
}

// OnFinish pins the countdown at zero. The view is left as it is.
func (e *Engine) OnFinish() {
	if e.state != StateRunning {
		return
	}
	e.remaining = 0
	e.sweep = 360
	e.paused = false
	e.state = StateFinished
	e.emit(EventFinished)
}

// Reset restarts the countdown from the full duration and clears any pause.
func (e *Engine) Reset() {
	if e.state == StateIdle {
		return
	}
	e.ticker.Cancel()
	e.remaining = e.duration
	e.sweep = 0
	e.paused = false
	e.state = StateRunning
	e.ticker.Start(e.duration, e.OnTick, e.OnFinish)
	e.emit(EventReset)
}

// Stop cancels tick emission and discards the countdown. Calling it again is a no-op.
func (e *Engine) Stop() {
	e.ticker.Cancel()
	if e.state == StateIdle {
		return
	}
	last := e.snapshot(EventStopped)
	e.duration = 0
	e.remaining = 0
	e.sweep = 0
	e.paused = false
	e.state = StateIdle
	e.notify(last)
}

// TogglePause flips the paused flag and returns its new value. In PauseSuspend
// mode the ticker is cancelled on pause and restarted from the frozen remaining
// time on resume; in PauseDisplay mode ticking continues untouched.
func (e *Engine) TogglePause() bool {
	switch e.state {
	case StateRunning:
		e.paused = !e.paused
		if e.paused && e.mode == PauseSuspend {
			e.ticker.Cancel()
			e.state = StatePaused
		}
	case StatePaused:
		e.paused = false
		e.state = StateRunning
		e.ticker.Start(e.remaining, e.OnTick, e.OnFinish)
	default:
		return e.paused
	}
	if e.paused {
		e.emit(EventPaused)
	} else {
		e.emit(EventResumed)
	}
	return e.paused
}

func (e *Engine) snapshot(kind EventKind) Event {
	return Event{
		Kind:       kind,
		Duration:   e.duration,
		Remaining:  e.remaining,
		SweepAngle: e.sweep,
		Paused:     e.paused,
	}
}

func (e *Engine) emit(kind EventKind) {
	e.notify(e.snapshot(kind))
}

func (e *Engine) notify(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}
