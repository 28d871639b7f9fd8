// Package stack provides a growable LIFO stack of item handles.
//
// A Stack follows the same growth policy as a vector (2*Cap()+1) without
// any wraparound. Index 0 addresses the top of the stack; negative indices
// count from the bottom (-1 is the bottom item).
package stack

import "github.com/randomizedcoder/axcontainers/internal/store"

// A Destructor disposes of an item the stack permanently relinquishes.
type Destructor[T any] func(T)

// Stack is a growable LIFO stack.
type Stack[T any] struct {
	items []T // len(items) MUST == cap; items[n-1] is the top
	n     int

	destroy Destructor[T]
	limit   store.Limit
}

// New creates a Stack with the default capacity.
func New[T any]() *Stack[T] {
	return NewSized[T](store.DefaultSize)
}

// NewSized creates a Stack with capacity max(1, size).
func NewSized[T any](size int) *Stack[T] {
	return &Stack[T]{items: make([]T, max(1, size))}
}

// Destroy passes every remaining item to the destructor, top first, and
// releases the storage. The stack must not be used afterwards.
func (s *Stack[T]) Destroy() {
	s.Clear()
	s.items = nil
}

// Push puts x on top. Returns store.ErrCapacity and leaves the stack
// unchanged if it is full and may not grow.
func (s *Stack[T]) Push(x T) error {
	if s.n == len(s.items) {
		size, ok := s.limit.Fit(store.VectorGrowth(len(s.items)), s.n+1)
		if !ok {
			return store.ErrCapacity
		}
		s.realloc(size)
	}
	s.items[s.n] = x
	s.n++
	return nil
}

// Pop removes and returns the top item. Returns false if the stack is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	s.n--
	x := s.items[s.n]
	s.items[s.n] = zero
	return x, true
}

// Top returns the top item without removing it.
func (s *Stack[T]) Top() (T, bool) {
	return s.At(0)
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the number of allocated slots.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// slot maps a top-relative index onto storage.
func (s *Stack[T]) slot(i int) (int, bool) {
	i, ok := store.Normalize(i, s.n)
	return s.n - 1 - i, ok
}

// At returns the item i places below the top; -1 is the bottom item.
func (s *Stack[T]) At(i int) (T, bool) {
	p, ok := s.slot(i)
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[p], true
}

// Swap exchanges the items at top-relative indices i and j.
func (s *Stack[T]) Swap(i, j int) error {
	pi, ok1 := s.slot(i)
	pj, ok2 := s.slot(j)
	if !ok1 || !ok2 {
		return store.ErrOutOfRange
	}
	s.items[pi], s.items[pj] = s.items[pj], s.items[pi]
	return nil
}

// Reverse turns the stack upside down.
func (s *Stack[T]) Reverse() *Stack[T] {
	store.Reverse(s.items[:s.n])
	return s
}

// Clear removes every item, passing each to the destructor top first.
func (s *Stack[T]) Clear() *Stack[T] {
	if s.destroy != nil {
		for i := s.n - 1; i >= 0; i-- {
			s.destroy(s.items[i])
		}
	}
	clear(s.items[:s.n])
	s.n = 0
	return s
}

// Copy returns a duplicate with the same capacity. The destructor is not
// carried over.
func (s *Stack[T]) Copy() *Stack[T] {
	c := NewSized[T](len(s.items))
	c.limit = s.limit
	c.n = copy(c.items, s.items[:s.n])
	return c
}

// Resize sets the capacity to exactly max(1, size), destroying items from
// the top down until the rest fit.
func (s *Stack[T]) Resize(size int) error {
	size = max(1, size)
	if err := s.limit.Check(size); err != nil {
		return err
	}
	for s.n > size {
		s.n--
		if s.destroy != nil {
			s.destroy(s.items[s.n])
		}
	}
	s.realloc(size)
	return nil
}

func (s *Stack[T]) realloc(size int) {
	items := make([]T, size)
	copy(items, s.items[:s.n])
	s.items = items
}

// DestroyItem passes x to the destructor, if one is set.
func (s *Stack[T]) DestroyItem(x T) *Stack[T] {
	if s.destroy != nil {
		s.destroy(x)
	}
	return s
}

// SetDestructor sets the destructor.
func (s *Stack[T]) SetDestructor(d Destructor[T]) *Stack[T] {
	s.destroy = d
	return s
}

// Destructor returns the destructor, or nil.
func (s *Stack[T]) Destructor() Destructor[T] {
	return s.destroy
}

// SetLimit caps the capacity the stack may grow to. 0 removes the cap.
func (s *Stack[T]) SetLimit(n int) *Stack[T] {
	s.limit = store.Limit(n)
	return s
}

// Data returns the items bottom first. The slice aliases the stack's
// storage.
func (s *Stack[T]) Data() []T {
	return s.items[:s.n]
}
