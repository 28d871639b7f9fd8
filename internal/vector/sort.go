package vector

import (
	"slices"

	"github.com/randomizedcoder/axcontainers/internal/store"
)

// Sort sorts the items by the comparator. The sort is not stable.
func (v *Vector[T]) Sort() *Vector[T] {
	slices.SortFunc(v.items[:v.n], v.cmp)
	return v
}

// SortSection sorts the half-open range [i, j) by the comparator.
func (v *Vector[T]) SortSection(i, j int) error {
	lo, hi, err := store.Section(i, j, v.n)
	if err != nil {
		return err
	}
	slices.SortFunc(v.items[lo:hi], v.cmp)
	return nil
}

// IsSorted reports whether the items are in non-decreasing order by the
// comparator.
func (v *Vector[T]) IsSorted() bool {
	return slices.IsSortedFunc(v.items[:v.n], v.cmp)
}

// BinarySearch returns the index of an item equal to x. The vector MUST be
// sorted by the active comparator. Returns false if there is no such item.
func (v *Vector[T]) BinarySearch(x T) (int, bool) {
	i, found := slices.BinarySearchFunc(v.items[:v.n], x, v.cmp)
	if !found {
		return -1, false
	}
	return i, true
}

// LinearSearch returns the index of the first item equal to x by the
// comparator. Returns false if there is no such item.
func (v *Vector[T]) LinearSearch(x T) (int, bool) {
	return v.linearSearch(x, 0, v.n)
}

// LinearSearchSection is like LinearSearch restricted to [i, j). An
// invalid range finds nothing.
func (v *Vector[T]) LinearSearchSection(x T, i, j int) (int, bool) {
	lo, hi, err := store.Section(i, j, v.n)
	if err != nil {
		return -1, false
	}
	return v.linearSearch(x, lo, hi)
}

func (v *Vector[T]) linearSearch(x T, lo, hi int) (int, bool) {
	for i := lo; i < hi; i++ {
		if v.cmp(x, v.items[i]) == 0 {
			return i, true
		}
	}
	return -1, false
}
