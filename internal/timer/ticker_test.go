package timer

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestLoopTickerDeliversRemaining(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	tk := NewLoopTicker(time.Millisecond, clock.Now)
	var got []time.Duration
	finished := false
	tk.Start(10*time.Millisecond, func(r time.Duration) { got = append(got, r) }, func() { finished = true })

	gen, ok := tk.Arm()
	if !ok {
		t.Fatalf("expected Arm to schedule a fire")
	}
	if _, again := tk.Arm(); again {
		t.Fatalf("Arm must not double-schedule")
	}
	clock.now = clock.now.Add(4 * time.Millisecond)
	tk.Fire(gen, clock.now)
	if len(got) != 1 || got[0] != 6*time.Millisecond {
		t.Fatalf("ticks = %v", got)
	}

	gen, ok = tk.Arm()
	if !ok {
		t.Fatalf("expected re-arm after fire")
	}
	clock.now = clock.now.Add(20 * time.Millisecond)
	tk.Fire(gen, clock.now)
	if !finished || tk.Running() {
		t.Fatalf("expected finish, finished=%v running=%v", finished, tk.Running())
	}
	if _, ok := tk.Arm(); ok {
		t.Fatalf("finished ticker must not arm")
	}
}

func TestLoopTickerDropsStaleGenerations(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	tk := NewLoopTicker(0, clock.Now)
	if tk.Interval() != time.Millisecond {
		t.Fatalf("Interval = %v", tk.Interval())
	}
	ticks := 0
	tk.Start(time.Second, func(time.Duration) { ticks++ }, nil)
	stale, _ := tk.Arm()

	tk.Cancel()
	tk.Fire(stale, clock.now)
	if ticks != 0 {
		t.Fatalf("tick delivered after cancel")
	}

	tk.Start(time.Second, func(time.Duration) { ticks++ }, nil)
	if tk.Generation() == stale {
		t.Fatalf("restart must bump the generation")
	}
	tk.Fire(stale, clock.now)
	if ticks != 0 {
		t.Fatalf("stale tick delivered to new run")
	}
	gen, ok := tk.Arm()
	if !ok {
		t.Fatalf("new run must arm")
	}
	tk.Fire(gen, clock.now.Add(time.Millisecond))
	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}
}

func TestLoopTickerDrivesEngine(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	tk := NewLoopTicker(time.Millisecond, clock.Now)
	e := NewEngine(tk, PauseSuspend)
	e.Start(3 * time.Millisecond)
	for i := 0; i < 5; i++ {
		gen, ok := tk.Arm()
		if !ok {
			break
		}
		clock.now = clock.now.Add(time.Millisecond)
		tk.Fire(gen, clock.now)
	}
	if e.State() != StateFinished || e.Remaining() != 0 {
		t.Fatalf("state=%v remaining=%v", e.State(), e.Remaining())
	}
}

func TestManualTickerStopsOnRestartFromCallback(t *testing.T) {
	tk := NewManualTicker(time.Millisecond)
	restarts := 0
	var onTick TickFunc
	onTick = func(r time.Duration) {
		if r == 5*time.Millisecond && restarts == 0 {
			restarts++
			tk.Start(10*time.Millisecond, onTick, nil)
		}
	}
	tk.Start(10*time.Millisecond, onTick, nil)
	if fired := tk.Step(100); fired != 5 {
		t.Fatalf("fired = %d, want 5", fired)
	}
	if tk.Remaining() != 10*time.Millisecond || tk.Starts != 2 {
		t.Fatalf("remaining=%v starts=%d", tk.Remaining(), tk.Starts)
	}
}
