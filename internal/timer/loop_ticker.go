package timer

import "time"

// LoopTicker is a Ticker for event loops. The loop arms it, waits one
// interval, then hands the generation back to Fire on the loop goroutine.
// Fires carrying a stale generation are dropped, which is how Cancel and
// restarts discard ticks that were already scheduled.
type LoopTicker struct {
	interval time.Duration
	now      func() time.Time
	gen      uint64
	running  bool
	armed    bool
	deadline time.Time
	onTick   TickFunc
	onFinish func()
}

// NewLoopTicker returns a ticker measuring remaining time against now.
// A nil now uses time.Now.
func NewLoopTicker(interval time.Duration, now func() time.Time) *LoopTicker {
	if interval <= 0 {
		interval = time.Millisecond
	}
	if now == nil {
		now = time.Now
	}
	return &LoopTicker{interval: interval, now: now}
}

func (t *LoopTicker) Start(total time.Duration, onTick TickFunc, onFinish func()) {
	t.gen++
	t.running = true
	t.armed = false
	t.deadline = t.now().Add(total)
	t.onTick = onTick
	t.onFinish = onFinish
}

func (t *LoopTicker) Cancel() {
	t.gen++
	t.running = false
	t.armed = false
}

func (t *LoopTicker) Interval() time.Duration { return t.interval }

func (t *LoopTicker) Running() bool { return t.running }

// Generation identifies the current run.
func (t *LoopTicker) Generation() uint64 { return t.gen }

// Arm reports whether the loop must schedule a fire, and for which generation.
// It returns false while a fire for the current run is already outstanding.
func (t *LoopTicker) Arm() (uint64, bool) {
	if !t.running || t.armed {
		return 0, false
	}
	t.armed = true
	return t.gen, true
}

// Fire delivers one tick measured at the given instant.
func (t *LoopTicker) Fire(gen uint64, at time.Time) {
	if gen != t.gen || !t.running {
		return
	}
	t.armed = false
	remaining := t.deadline.Sub(at)
	if remaining <= 0 {
		t.running = false
		if t.onFinish != nil {
			t.onFinish()
		}
		return
	}
	if t.onTick != nil {
		t.onTick(remaining)
	}
}
