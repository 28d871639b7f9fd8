package vector

import "iter"

// A Snapshot is a non-owning view of a vector's items taken at one instant.
//
// Values may be read and written through a snapshot, but any structural
// mutation of the vector (anything that changes its length or storage)
// makes the snapshot stale. Accessing a stale snapshot panics.
type Snapshot[T any] struct {
	v     *Vector[T]
	gen   uint64
	items []T
}

// Snapshot returns a view of the current items.
func (v *Vector[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		v:     v,
		gen:   v.gen,
		items: v.items[:v.n],
	}
}

// Valid reports whether the vector has not been structurally mutated since
// the snapshot was taken.
func (s Snapshot[T]) Valid() bool {
	return s.v != nil && s.v.gen == s.gen
}

// Len returns the number of items in the view.
func (s Snapshot[T]) Len() int {
	return len(s.items)
}

// At returns the i'th item of the view. It panics if the snapshot is stale
// or i is out of range.
func (s Snapshot[T]) At(i int) T {
	s.check()
	return s.items[i]
}

// Set overwrites the i'th item of the view. Like [Vector.Set], the
// destructor is not called on the old item.
func (s Snapshot[T]) Set(i int, x T) {
	s.check()
	s.items[i] = x
}

// Swap exchanges the i'th and j'th items of the view.
func (s Snapshot[T]) Swap(i, j int) {
	s.check()
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// All yields the index and value of every item in the view. It panics if
// the vector is structurally mutated during iteration.
func (s Snapshot[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.items {
			s.check()
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

func (s Snapshot[T]) check() {
	if !s.Valid() {
		panic("vector: stale snapshot")
	}
}
