package timer

import "time"

// ManualTicker is a Ticker advanced explicitly by its owner, one interval per step.
type ManualTicker struct {
	interval  time.Duration
	remaining time.Duration
	running   bool
	gen       uint64
	onTick    TickFunc
	onFinish  func()

	Starts  int
	Cancels int
}

func NewManualTicker(interval time.Duration) *ManualTicker {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &ManualTicker{interval: interval}
}

func (t *ManualTicker) Start(total time.Duration, onTick TickFunc, onFinish func()) {
	t.gen++
	t.remaining = total
	t.running = true
	t.onTick = onTick
	t.onFinish = onFinish
	t.Starts++
}

func (t *ManualTicker) Cancel() {
	t.gen++
	t.running = false
	t.Cancels++
}

// Running reports whether a countdown is being emitted.
func (t *ManualTicker) Running() bool { return t.running }

// Remaining is the time left in the current run.
func (t *ManualTicker) Remaining() time.Duration { return t.remaining }

// Step fires up to n ticks and returns how many were delivered. It stops early
// when the run finishes or a callback cancels or restarts the ticker.
func (t *ManualTicker) Step(n int) int {
	fired := 0
	for fired < n && t.running {
		gen := t.gen
		fired++
		t.remaining -= t.interval
		if t.remaining <= 0 {
			t.remaining = 0
			t.running = false
			if t.onFinish != nil {
				t.onFinish()
			}
			return fired
		}
		if t.onTick != nil {
			t.onTick(t.remaining)
		}
		if t.gen != gen {
			return fired
		}
	}
	return fired
}

// Advance fires as many ticks as fit in d.
func (t *ManualTicker) Advance(d time.Duration) int {
	return t.Step(int(d / t.interval))
}
