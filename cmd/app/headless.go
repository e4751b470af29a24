package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/timer"
	"github.com/akyairhashvil/countdown/internal/tui"
)

// headless runs one countdown without the TUI. The wall ticker only paces
// the loop; every fire happens on the loop goroutine.
type headless struct {
	machine *timer.Machine
	ticker  *timer.LoopTicker
	out     io.Writer
	label   string
}

// newHeadless records sessions with ctx so they are still closed after an
// interrupt cancels the run.
func newHeadless(ctx context.Context, store tui.Store, settings config.Settings, now func() time.Time, out io.Writer) *headless {
	ticker := timer.NewLoopTicker(settings.TickInterval, now)
	engine := timer.NewEngine(ticker, timer.ParsePauseMode(settings.PauseMode))
	h := &headless{
		machine: timer.NewMachine(engine),
		ticker:  ticker,
		out:     out,
	}
	engine.Subscribe(tui.NewSessionRecorder(ctx, store, now).Handle)
	engine.Subscribe(h.printLabel)
	return h
}

func (h *headless) printLabel(ev timer.Event) {
	label := timer.FormatLabel(ev.Remaining)
	if ev.Kind == timer.EventFinished {
		label = timer.FormatLabel(0)
	}
	if label == h.label {
		return
	}
	h.label = label
	fmt.Fprintln(h.out, label)
}

func (h *headless) run(ctx context.Context, digits string, ticks <-chan time.Time) error {
	if err := loadDigits(h.machine, digits); err != nil {
		return err
	}
	if err := h.machine.Start(); err != nil {
		return err
	}
	engine := h.machine.Engine()
	for engine.State() != timer.StateFinished {
		select {
		case <-ctx.Done():
			h.machine.Stop()
			fmt.Fprintln(h.out, "Stopped")
			return nil
		case at := <-ticks:
			h.ticker.Fire(h.ticker.Generation(), at)
		}
	}
	fmt.Fprintln(h.out, "Finished")
	return nil
}
