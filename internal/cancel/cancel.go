// Package cancel provides the stop signal polled by the simulation loop.
//
// The loop checks Done() once per iteration, so implementations are
// non-blocking. Two are provided:
//   - Context: stops when a context.Context is cancelled (e.g. SIGINT via
//     signal.NotifyContext)
//   - Flag: an atomic flag flipped from inside the loop (e.g. a quit
//     command)
//
// Any is the combination of several Cancelers.
package cancel

import (
	"context"
	"sync/atomic"
)

// Canceler signals the simulation loop to stop.
//
// Implementations must be safe for concurrent use: Cancel may be called
// from any goroutine while the loop polls Done.
type Canceler interface {
	// Done returns true once cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}

// Context is a Canceler backed by a context.Context.
type Context struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewContext derives a cancellable context from parent.
func NewContext(parent context.Context) *Context {
	ctx, cancel := context.WithCancel(parent)
	return &Context{ctx: ctx, cancel: cancel}
}

// Done performs a non-blocking check of ctx.Done().
func (c *Context) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the derived context.
func (c *Context) Cancel() {
	c.cancel()
}

// Context returns the derived context, for passing to blocking calls.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Flag is a Canceler backed by an atomic.Bool. The zero value is ready to
// use.
type Flag struct {
	done atomic.Bool
}

// Done is a single atomic load.
func (f *Flag) Done() bool {
	return f.done.Load()
}

// Cancel sets the flag.
func (f *Flag) Cancel() {
	f.done.Store(true)
}

// Reset clears the flag. Not safe to call concurrently with Done or Cancel.
func (f *Flag) Reset() {
	f.done.Store(false)
}

// Any is done as soon as any of its Cancelers is; Cancel cancels all of
// them.
type Any []Canceler

// Done reports whether any member is done.
func (a Any) Done() bool {
	for _, c := range a {
		if c.Done() {
			return true
		}
	}
	return false
}

// Cancel cancels every member.
func (a Any) Cancel() {
	for _, c := range a {
		c.Cancel()
	}
}
