package life

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/randomizedcoder/axcontainers/internal/stack"
)

// Cell is a live square of the world.
type Cell struct {
	X, Y int64
}

// CompareCells orders cells by X, then by Y.
func CompareCells(a, b *Cell) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// ErrPoolExhausted is returned when a Pool may not hand out another object.
var ErrPoolExhausted = errors.New("life: pool exhausted")

const (
	poolRefill  = 16
	poolMaxIdle = 1_000_000
)

// Pool is a free list of small objects.
//
// Objects are allocated in batches of 16 and recycled through a stack. A
// pool with a limit never has more than limit objects outstanding and idle
// combined; Get then fails with ErrPoolExhausted.
type Pool[E any] struct {
	free      *stack.Stack[*E]
	limit     int
	allocated int
}

// NewPool creates a pool. limit <= 0 means unlimited.
func NewPool[E any](limit int) *Pool[E] {
	p := &Pool[E]{limit: max(0, limit)}
	idle := poolMaxIdle
	if p.limit > 0 {
		idle = min(idle, p.limit)
	}
	p.free = stack.NewSized[*E](poolRefill).
		SetLimit(idle).
		SetDestructor(func(*E) { p.allocated-- })
	return p
}

// Get returns a zeroed object.
func (p *Pool[E]) Get() (*E, error) {
	if x, ok := p.free.Pop(); ok {
		return x, nil
	}

	n := poolRefill
	if p.limit > 0 {
		n = min(n, p.limit-p.allocated)
	}
	if n <= 0 {
		return nil, ErrPoolExhausted
	}
	for range n {
		if err := p.free.Push(new(E)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPoolExhausted, err)
		}
		p.allocated++
	}
	x, _ := p.free.Pop()
	return x, nil
}

// Put zeroes x and returns it to the pool. A nil x is ignored.
func (p *Pool[E]) Put(x *E) {
	if x == nil {
		return
	}
	var zero E
	*x = zero
	if p.free.Len() >= poolMaxIdle || p.free.Push(x) != nil {
		p.free.DestroyItem(x)
	}
}

// Live returns the number of objects handed out and not yet returned.
func (p *Pool[E]) Live() int {
	return p.allocated - p.free.Len()
}

// Idle returns the number of objects waiting in the pool.
func (p *Pool[E]) Idle() int {
	return p.free.Len()
}

// Close releases every idle object.
func (p *Pool[E]) Close() {
	p.free.Destroy()
}
