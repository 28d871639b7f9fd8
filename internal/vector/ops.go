package vector

import (
	"math"

	"github.com/randomizedcoder/axcontainers/internal/store"
)

// Push appends x. A full vector grows to 2*Cap()+1 slots (or to its limit,
// if that is smaller but still has room). Returns store.ErrCapacity and
// leaves the vector unchanged if no room can be made.
func (v *Vector[T]) Push(x T) error {
	v.guard.Enter("Push")
	defer v.guard.Exit()

	if v.n == len(v.items) {
		size, ok := v.limit.Fit(store.VectorGrowth(len(v.items)), v.n+1)
		if !ok {
			return store.ErrCapacity
		}
		v.realloc(size)
	}
	v.items[v.n] = x
	v.n++
	v.gen++
	return nil
}

// Pop removes and returns the last item. Ownership passes to the caller;
// the destructor is not called. Returns false if the vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	v.guard.Enter("Pop")
	defer v.guard.Exit()

	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	x := v.items[v.n]
	v.items[v.n] = zero
	v.gen++
	return x, true
}

// Top returns the last item without removing it.
// Returns false if the vector is empty.
func (v *Vector[T]) Top() (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	return v.items[v.n-1], true
}

// At returns the item at index i; -1 is the last item.
// Returns false if i is out of range.
func (v *Vector[T]) At(i int) (T, bool) {
	i, ok := store.Normalize(i, v.n)
	if !ok {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// Set replaces the item at index i. The overwritten item is NOT passed to
// the destructor; it remains the caller's responsibility.
func (v *Vector[T]) Set(i int, x T) error {
	i, ok := store.Normalize(i, v.n)
	if !ok {
		return store.ErrOutOfRange
	}
	v.items[i] = x
	return nil
}

// Swap exchanges the items at indices i and j.
func (v *Vector[T]) Swap(i, j int) error {
	i, ok1 := store.Normalize(i, v.n)
	j, ok2 := store.Normalize(j, v.n)
	if !ok1 || !ok2 {
		return store.ErrOutOfRange
	}
	v.items[i], v.items[j] = v.items[j], v.items[i]
	return nil
}

// Reverse reverses the order of the items in place.
func (v *Vector[T]) Reverse() *Vector[T] {
	store.Reverse(v.items[:v.n])
	return v
}

// ReverseSection reverses the half-open range [i, j) in place.
func (v *Vector[T]) ReverseSection(i, j int) error {
	lo, hi, err := store.Section(i, j, v.n)
	if err != nil {
		return err
	}
	store.Reverse(v.items[lo:hi])
	return nil
}

// Rotate rotates the items right by k positions; the item at index i moves
// to (i+k) mod Len(). A negative k rotates left.
func (v *Vector[T]) Rotate(k int) *Vector[T] {
	store.RotateLeft(v.items[:v.n], -k)
	return v
}

// Shift opens (n > 0) or closes (n < 0) a gap of |n| slots at index i.
//
// Opening a gap moves items [i, Len()) right by n, growing the storage to
// exactly Len()+n if needed, and fills the gap with zero values; i may
// equal Len() to open the gap at the end. Closing a gap removes up to |n|
// items starting at i, passing each to the destructor, and moves the rest
// left.
func (v *Vector[T]) Shift(i, n int) error {
	if n == 0 {
		return nil
	}
	if i < 0 {
		i += v.n
	}

	if n > 0 {
		if i < 0 || i > v.n {
			return store.ErrOutOfRange
		}
		if n > math.MaxInt-v.n {
			return store.ErrCapacity
		}
		if err := v.reserve(v.n + n); err != nil {
			return err
		}
		copy(v.items[i+n:], v.items[i:v.n])
		clear(v.items[i : i+n])
		v.n += n
		v.gen++
		return nil
	}

	if i < 0 || i >= v.n {
		return store.ErrOutOfRange
	}
	n = min(-n, v.n-i)
	if v.destroy != nil {
		for _, x := range v.items[i : i+n] {
			v.destroy(x)
		}
	}
	copy(v.items[i:], v.items[i+n:v.n])
	clear(v.items[v.n-n : v.n])
	v.n -= n
	v.gen++
	return nil
}

// Discard removes the last n items (clamped to Len()), passing each to the
// destructor, and returns how many were removed.
func (v *Vector[T]) Discard(n int) int {
	n = max(0, min(n, v.n))
	tail := v.items[v.n-n : v.n]
	if v.destroy != nil {
		for _, x := range tail {
			v.destroy(x)
		}
	}
	clear(tail)
	v.n -= n
	v.gen++
	return n
}

// Clear removes every item, passing each to the destructor (last to
// first). The capacity is retained.
func (v *Vector[T]) Clear() *Vector[T] {
	if v.destroy != nil {
		for i := v.n - 1; i >= 0; i-- {
			v.destroy(v.items[i])
		}
	}
	clear(v.items[:v.n])
	v.n = 0
	v.gen++
	return v
}

// Resize sets the capacity to exactly max(1, size). Items beyond the new
// capacity are passed to the destructor (last to first) and dropped.
func (v *Vector[T]) Resize(size int) error {
	size = max(1, size)
	if err := v.limit.Check(size); err != nil {
		return err
	}
	if size < v.n {
		if v.destroy != nil {
			for i := v.n - 1; i >= size; i-- {
				v.destroy(v.items[i])
			}
		}
		v.n = size
	}
	v.realloc(size)
	return nil
}
