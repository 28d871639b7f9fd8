// Package store holds the growable-store discipline shared by the
// containers in this module.
//
// Every container keeps its items in a slice whose length always equals its
// capacity (len(items) == cap), tracks the live count separately, and grows
// or shrinks by allocating a new slice and copying the live region over.
// This package provides the pieces of that discipline that are identical
// across containers:
//   - index normalization (negative indices count from the end)
//   - growth policies
//   - in-place reversal and triple-reversal rotation
//   - an optional capacity limit standing in for allocation failure
//   - a guard that detects concurrent mutation
package store

import "errors"

// DefaultSize is the capacity of a container built by a default constructor.
const DefaultSize = 7

var (
	// ErrOutOfRange is returned when an index (after normalization) falls
	// outside the live region of a container.
	ErrOutOfRange = errors.New("index out of range")

	// ErrCapacity is returned when growth would take a container past its
	// capacity limit. The container is left unchanged.
	ErrCapacity = errors.New("capacity limit exceeded")
)

// Normalize maps a possibly negative index onto [0, n).
// A negative index has n added to it exactly once.
// Returns false if the result is still outside [0, n).
func Normalize(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// Clamp normalizes i like Normalize and then clamps it into [0, n].
// It is used by slicing operations, which never fail.
func Clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Section normalizes the half-open range [i, j) against a live length n.
//
// The range is valid iff n > 0 and 0 <= lo <= hi <= n after normalization.
// j == n (or j == 0 when negative indices wrap onto it) addresses the end.
func Section(i, j, n int) (lo, hi int, err error) {
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	if n == 0 || i < 0 || j > n || i > j {
		return 0, 0, ErrOutOfRange
	}
	return i, j, nil
}

// VectorGrowth returns the capacity a full vector or stack of capacity c
// grows to.
func VectorGrowth(c int) int {
	return c<<1 | 1
}

// QueueGrowth returns the capacity a full queue of capacity c grows to.
func QueueGrowth(c int) int {
	if c == 0 {
		return 1
	}
	return c << 1
}

// Reverse reverses s in place with two converging cursors.
func Reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// RotateLeft rotates s left by k positions using three reversals:
// the whole slice, then each of the two halves.
// k is taken modulo len(s) and may be negative (rotate right).
func RotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	Reverse(s)
	Reverse(s[:n-k])
	Reverse(s[n-k:])
}
