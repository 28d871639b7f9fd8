// Package tick paces the simulation loop.
//
// The loop polls Tick() on every iteration and advances one generation
// each time it returns true. Rate is the implementation used: an atomic
// ticker whose rate can be changed while the loop is running, reading the
// runtime's monotonic clock directly instead of going through the timer
// heap.
package tick

import "time"

// Ticker signals when a generation is due.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset starts a new interval from now.
	Reset()

	// Stop releases any resources held by the ticker.
	Stop()
}

// DefaultRate is the number of generations per second used when none is
// configured.
const DefaultRate = 6

// Interval converts a rate in ticks per second into the time between ticks.
// Rates below 1 are treated as 1.
func Interval(perSecond int) time.Duration {
	return time.Second / time.Duration(max(1, perSecond))
}
