// Package timer holds the countdown core: the HHMMSS digit accumulator, duration
// parsing, the countdown engine, the setup/countdown state machine and the tick
// sources that drive it. Nothing here depends on a rendering framework.
//
// All mutable state is owned by a single goroutine. Ticker implementations
// deliver ticks sequentially and never after Cancel has returned.
package timer
