package timer

import "time"

// TickFunc receives the time left until the countdown finishes.
type TickFunc func(remaining time.Duration)

// Ticker is the periodic countdown source. Start begins emitting ticks for a
// countdown of total length; a running countdown is replaced. Cancel stops
// emission; once it returns no tick or finish callback is delivered for the
// cancelled run. Both calls are made from the goroutine that receives the callbacks.
type Ticker interface {
	Start(total time.Duration, onTick TickFunc, onFinish func())
	Cancel()
}
