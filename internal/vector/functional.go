package vector

import "github.com/randomizedcoder/axcontainers/internal/store"

// Max returns the greatest item by the comparator; the first one wins ties.
// Returns false if the vector is empty.
func (v *Vector[T]) Max() (T, bool) {
	return v.extreme(1)
}

// Min returns the least item by the comparator; the first one wins ties.
// Returns false if the vector is empty.
func (v *Vector[T]) Min() (T, bool) {
	return v.extreme(-1)
}

func (v *Vector[T]) extreme(sign int) (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	best := v.items[0]
	for _, x := range v.items[1:v.n] {
		if v.cmp(x, best)*sign > 0 {
			best = x
		}
	}
	return best, true
}

// Any reports whether f holds for at least one item.
func (v *Vector[T]) Any(f func(T) bool) bool {
	for _, x := range v.items[:v.n] {
		if f(x) {
			return true
		}
	}
	return false
}

// All reports whether f holds for every item. It is true for an empty
// vector.
func (v *Vector[T]) All(f func(T) bool) bool {
	for _, x := range v.items[:v.n] {
		if !f(x) {
			return false
		}
	}
	return true
}

// Count returns the number of items equal to x by the comparator.
func (v *Vector[T]) Count(x T) int {
	n := 0
	for _, y := range v.items[:v.n] {
		if v.cmp(x, y) == 0 {
			n++
		}
	}
	return n
}

// Compare reports whether v and o have the same length and are pairwise
// equal by v's comparator.
func (v *Vector[T]) Compare(o *Vector[T]) bool {
	if v.n != o.n {
		return false
	}
	for i, x := range v.items[:v.n] {
		if v.cmp(x, o.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Map replaces every item with f(item), in place. The destructor is not
// called on replaced handles; if f returns a different handle, disposing of
// the old one is up to f.
func (v *Vector[T]) Map(f func(T) T) *Vector[T] {
	live := v.items[:v.n]
	for i, x := range live {
		live[i] = f(x)
	}
	return v
}

// Filter keeps the items for which keep returns true, compacted to the
// front in their original order. Rejected items are passed to the
// destructor.
func (v *Vector[T]) Filter(keep func(T) bool) *Vector[T] {
	n := 0
	for _, x := range v.items[:v.n] {
		if keep(x) {
			v.items[n] = x
			n++
		} else if v.destroy != nil {
			v.destroy(x)
		}
	}
	clear(v.items[n:v.n])
	v.n = n
	v.gen++
	return v
}

// FilterSplit is like Filter but moves rejected items, in order, into a new
// vector instead of destroying them. Ownership of the rejects moves with
// them, so the returned vector carries v's destructor.
func (v *Vector[T]) FilterSplit(keep func(T) bool) *Vector[T] {
	rejects := v.derive(v.n)
	rejects.destroy = v.destroy

	n := 0
	for _, x := range v.items[:v.n] {
		if keep(x) {
			v.items[n] = x
			n++
		} else {
			rejects.items[rejects.n] = x
			rejects.n++
		}
	}
	clear(v.items[n:v.n])
	v.n = n
	v.gen++
	return rejects
}

// Foreach calls f on every item from first to last, stopping early if f
// returns false. f may not change the vector's length or capacity.
func (v *Vector[T]) Foreach(f func(T) bool) *Vector[T] {
	for _, x := range v.items[:v.n] {
		if !f(x) {
			break
		}
	}
	return v
}

// RForeach is like Foreach but visits items from last to first.
func (v *Vector[T]) RForeach(f func(T) bool) *Vector[T] {
	for i := v.n - 1; i >= 0; i-- {
		if !f(v.items[i]) {
			break
		}
	}
	return v
}

// ForSection is like Foreach restricted to the half-open range [i, j).
func (v *Vector[T]) ForSection(i, j int, f func(T) bool) error {
	lo, hi, err := store.Section(i, j, v.n)
	if err != nil {
		return err
	}
	for _, x := range v.items[lo:hi] {
		if !f(x) {
			break
		}
	}
	return nil
}
