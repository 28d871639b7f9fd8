// Package queue provides a growable FIFO ring buffer of item handles.
//
// A Queue keeps its items in a ring of Cap() slots addressed by a read
// cursor (the oldest item) and a write cursor (the next free slot). The
// live count is tracked explicitly: a full ring and an empty ring both have
// read == write.
//
// Logical index i (0 = oldest) lives in physical slot (read + i) mod Cap().
//
// # Growth and re-linearization
//
// A full queue doubles its capacity on Enqueue. Growing, shrinking and
// Data() all re-linearize the ring: the oldest item is moved to slot 0 and
// the rest follow contiguously. Logical order and values never change, only
// the physical arrangement.
//
// # Ownership
//
// Items dropped by Clear, Destroy or a shrinking Resize are passed to the
// optional Destructor. Dequeue hands ownership back to the caller. Copy
// does not carry the destructor over.
//
// # Concurrency
//
// A Queue is single-owner. Concurrent Enqueue/Dequeue calls are detected
// and panic; any other concurrent use is undefined.
package queue

import "github.com/randomizedcoder/axcontainers/internal/store"

// A Destructor disposes of an item the queue permanently relinquishes.
type Destructor[T any] func(T)

// Queue is a growable FIFO ring buffer.
type Queue[T any] struct {
	ring  []T // len(ring) MUST == cap
	read  int // 0 <= read < len(ring)
	write int // 0 <= write < len(ring); write == (read + n) mod cap
	n     int // 0 <= n <= len(ring)

	destroy Destructor[T]
	limit   store.Limit
	guard   store.Guard
}

// New creates a Queue with the default capacity.
func New[T any]() *Queue[T] {
	return NewSized[T](store.DefaultSize)
}

// NewSized creates a Queue with capacity max(1, size).
func NewSized[T any](size int) *Queue[T] {
	return &Queue[T]{
		ring: make([]T, max(1, size)),
	}
}

// Destroy drains every remaining item through the destructor, oldest
// first, and releases the storage. The queue must not be used afterwards.
func (q *Queue[T]) Destroy() {
	q.drain()
	q.ring = nil
}

// Enqueue appends x as the newest item. A full queue doubles its capacity
// (or grows to its limit, if that is smaller but still has room). Returns
// store.ErrCapacity and leaves the queue unchanged if no room can be made.
func (q *Queue[T]) Enqueue(x T) error {
	q.guard.Enter("Enqueue")
	defer q.guard.Exit()

	if q.n == len(q.ring) {
		size, ok := q.limit.Fit(store.QueueGrowth(len(q.ring)), q.n+1)
		if !ok {
			return store.ErrCapacity
		}
		q.relocate(size)
	}
	q.ring[q.write] = x
	q.write = q.wrap(q.write + 1)
	q.n++
	return nil
}

// Dequeue removes and returns the oldest item. Ownership passes to the
// caller. Returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.guard.Enter("Dequeue")
	defer q.guard.Exit()

	var zero T
	if q.n == 0 {
		return zero, false
	}
	x := q.ring[q.read]
	q.ring[q.read] = zero
	q.read = q.wrap(q.read + 1)
	q.n--
	return x, true
}

// Front returns the oldest item without removing it.
// Returns false if the queue is empty.
func (q *Queue[T]) Front() (T, bool) {
	if q.n == 0 {
		var zero T
		return zero, false
	}
	return q.ring[q.read], true
}

// Len returns the number of items.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the number of slots in the ring.
func (q *Queue[T]) Cap() int {
	return len(q.ring)
}

// At returns the item at logical index i (0 = oldest, -1 = newest).
// Returns false if i is out of range.
func (q *Queue[T]) At(i int) (T, bool) {
	p, ok := q.slot(i)
	if !ok {
		var zero T
		return zero, false
	}
	return q.ring[p], true
}

// Swap exchanges the items at logical indices i and j.
func (q *Queue[T]) Swap(i, j int) error {
	pi, ok1 := q.slot(i)
	pj, ok2 := q.slot(j)
	if !ok1 || !ok2 {
		return store.ErrOutOfRange
	}
	q.ring[pi], q.ring[pj] = q.ring[pj], q.ring[pi]
	return nil
}

// Reverse reverses the logical order of the items in place.
func (q *Queue[T]) Reverse() *Queue[T] {
	if q.n < 2 {
		return q
	}
	l, r := q.read, q.wrap(q.read+q.n-1)
	for range q.n / 2 {
		q.ring[l], q.ring[r] = q.ring[r], q.ring[l]
		l = q.wrap(l + 1)
		r = q.wrap(r - 1 + len(q.ring))
	}
	return q
}

// Clear removes every item, passing each to the destructor oldest first,
// and resets both cursors to slot 0. The capacity is retained.
func (q *Queue[T]) Clear() *Queue[T] {
	q.drain()
	return q
}

// Copy returns a queue with the same capacity holding the same items in the
// same logical order, starting at slot 0. Handles are copied by value; the
// destructor is not carried over.
func (q *Queue[T]) Copy() *Queue[T] {
	c := NewSized[T](len(q.ring))
	c.limit = q.limit
	c.n = q.copyTo(c.ring)
	c.write = c.wrap(c.n)
	return c
}

// DestroyItem passes x to the destructor, if one is set.
func (q *Queue[T]) DestroyItem(x T) *Queue[T] {
	if q.destroy != nil {
		q.destroy(x)
	}
	return q
}

// SetDestructor sets the destructor. nil means removed items are simply
// forgotten.
func (q *Queue[T]) SetDestructor(d Destructor[T]) *Queue[T] {
	q.destroy = d
	return q
}

// Destructor returns the destructor, or nil.
func (q *Queue[T]) Destructor() Destructor[T] {
	return q.destroy
}

// SetLimit caps the capacity the queue may grow to. 0 removes the cap.
func (q *Queue[T]) SetLimit(n int) *Queue[T] {
	q.limit = store.Limit(n)
	return q
}

// Limit returns the capacity cap, 0 if unlimited.
func (q *Queue[T]) Limit() int {
	return int(q.limit)
}
