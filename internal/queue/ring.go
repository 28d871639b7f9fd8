package queue

import "github.com/randomizedcoder/axcontainers/internal/store"

// wrap maps a cursor in [0, 2*cap) back into [0, cap).
func (q *Queue[T]) wrap(i int) int {
	if i >= len(q.ring) {
		i -= len(q.ring)
	}
	return i
}

// slot translates a logical index into a physical slot.
func (q *Queue[T]) slot(i int) (int, bool) {
	i, ok := store.Normalize(i, q.n)
	if !ok {
		return 0, false
	}
	return q.wrap(q.read + i), true
}

// wrapped reports whether the live region runs past the end of the ring.
func (q *Queue[T]) wrapped() bool {
	return q.n > 0 && q.read+q.n > len(q.ring)
}

// copyTo copies the live region, oldest first, to the start of dst and
// returns the number of items copied.
func (q *Queue[T]) copyTo(dst []T) int {
	if !q.wrapped() {
		return copy(dst, q.ring[q.read:q.read+q.n])
	}
	k := copy(dst, q.ring[q.read:])
	return k + copy(dst[k:], q.ring[:q.write])
}

// relocate moves the live region into a fresh ring of size slots, oldest
// item at slot 0. size MUST be >= q.n.
func (q *Queue[T]) relocate(size int) {
	ring := make([]T, size)
	q.copyTo(ring)
	q.ring = ring
	q.read = 0
	q.write = q.wrap(q.n)
}

// linearize rotates the ring in place so that the oldest item sits in
// slot 0. It is a triple reversal over the physical ring, not the logical
// sequence.
func (q *Queue[T]) linearize() {
	if q.read == 0 {
		return
	}
	store.RotateLeft(q.ring, q.read)
	q.read = 0
	q.write = q.wrap(q.n)
}

// drain passes every item to the destructor, oldest first, and empties the
// ring.
func (q *Queue[T]) drain() {
	if q.destroy != nil {
		for i, p := 0, q.read; i < q.n; i, p = i+1, q.wrap(p+1) {
			q.destroy(q.ring[p])
		}
	}
	clear(q.ring)
	q.read, q.write, q.n = 0, 0, 0
}

// Resize sets the capacity to exactly max(1, size).
//
// Growing keeps every item. Shrinking below Len() first drops the oldest
// items, passing each to the destructor, until the rest fit. Either way the
// ring is re-linearized so the oldest surviving item is in slot 0.
func (q *Queue[T]) Resize(size int) error {
	size = max(1, size)
	if size == len(q.ring) {
		return nil
	}
	if err := q.limit.Check(size); err != nil {
		return err
	}
	if size > len(q.ring) {
		q.relocate(size)
		return nil
	}

	var zero T
	for lost := max(0, q.n-size); lost > 0; lost-- {
		if q.destroy != nil {
			q.destroy(q.ring[q.read])
		}
		q.ring[q.read] = zero
		q.read = q.wrap(q.read + 1)
		q.n--
	}
	q.linearize()

	ring := make([]T, size)
	copy(ring, q.ring[:q.n])
	q.ring = ring
	q.write = q.wrap(q.n)
	return nil
}

// Data re-linearizes the ring if the live region wraps and returns the live
// items, oldest first. The slice aliases the queue's storage and is
// invalidated by the next mutation.
func (q *Queue[T]) Data() []T {
	if q.wrapped() {
		q.linearize()
	}
	return q.ring[q.read : q.read+q.n]
}
