package tick

import (
	"sync/atomic"
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds without
// constructing a time.Time.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Rate is a Ticker firing a configurable number of times per second.
//
// The rate may be changed with SetRate or Adjust from any goroutine; the
// new interval applies from the next Tick.
type Rate struct {
	perSecond atomic.Int64
	lastTick  atomic.Int64
}

// NewRate creates a Rate firing perSecond times per second (at least 1).
func NewRate(perSecond int) *Rate {
	r := new(Rate)
	r.SetRate(perSecond)
	r.lastTick.Store(nanotime())
	return r
}

// Tick returns true if a full interval has elapsed since the last tick.
func (r *Rate) Tick() bool {
	now := nanotime()
	last := r.lastTick.Load()
	if now-last < int64(r.Interval()) {
		return false
	}
	return r.lastTick.CompareAndSwap(last, now)
}

// Reset starts a new interval from now.
func (r *Rate) Reset() {
	r.lastTick.Store(nanotime())
}

// Stop is a no-op; Rate holds no resources.
func (r *Rate) Stop() {}

// SetRate sets the number of ticks per second, clamped to at least 1.
func (r *Rate) SetRate(perSecond int) {
	r.perSecond.Store(int64(max(1, perSecond)))
}

// Adjust adds delta to the rate, clamped to at least 1, and returns the new
// rate.
func (r *Rate) Adjust(delta int) int {
	for {
		old := r.perSecond.Load()
		next := max(1, old+int64(delta))
		if r.perSecond.CompareAndSwap(old, next) {
			return int(next)
		}
	}
}

// PerSecond returns the current rate.
func (r *Rate) PerSecond() int {
	return int(r.perSecond.Load())
}

// Interval returns the time between ticks at the current rate.
func (r *Rate) Interval() time.Duration {
	return Interval(r.PerSecond())
}
