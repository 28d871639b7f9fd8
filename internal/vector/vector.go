// Package vector provides a growable, index-addressable array of item
// handles.
//
// A Vector owns the handles pushed into it until they are popped back out,
// overwritten, or destroyed. It never interprets a handle: ordering is
// delegated to a Comparator and disposal to an optional Destructor, both
// supplied by the caller.
//
// # Ownership
//
// Operations that permanently drop items (Clear, Discard, Resize below the
// length, Shift with a negative count, Filter, Destroy) pass each dropped
// item to the Destructor, if one is set. Operations that hand items back
// (Pop) or leave ownership with the caller (Set overwriting a slot, Map
// replacing a handle) never call it.
//
// Copy, Slice and RSlice duplicate handles by value and therefore do NOT
// carry the Destructor over: only one container may own-and-destroy a
// given handle. FilterSplit moves its rejects, so the returned vector does
// carry it.
//
// # Concurrency
//
// A Vector is single-owner. Concurrent Push/Pop calls are detected and
// panic; any other concurrent use is undefined. The reference count
// (IRef/DRef) is atomic so that shared owners may release concurrently.
package vector

import (
	"cmp"
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/randomizedcoder/axcontainers/internal/store"
)

// A Comparator orders two item handles: negative if a < b, zero if equal,
// positive if a > b.
type Comparator[T any] func(a, b T) int

// A Destructor disposes of an item the vector permanently relinquishes.
type Destructor[T any] func(T)

// Vector is a growable array of item handles.
//
// Invariants: 0 <= Len() <= Cap() and Cap() >= 1.
type Vector[T any] struct {
	items []T // len(items) MUST == cap; first n are live
	n     int

	cmp     Comparator[T]
	defCmp  Comparator[T]
	destroy Destructor[T]
	context any

	refs  atomic.Int64
	gen   uint64 // bumped on every structural mutation
	limit store.Limit
	guard store.Guard
}

// New creates a Vector of ordered handles with the default capacity,
// ordered by [cmp.Compare].
func New[T constraints.Ordered]() *Vector[T] {
	return NewSized[T](store.DefaultSize)
}

// NewSized creates a Vector of ordered handles with capacity max(1, size).
func NewSized[T constraints.Ordered](size int) *Vector[T] {
	return NewFunc(size, cmp.Compare[T])
}

// NewFunc creates a Vector with capacity max(1, size) ordered by c.
// c also becomes the default comparator that SetComparator(nil) restores.
// It panics if c is nil.
func NewFunc[T any](size int, c Comparator[T]) *Vector[T] {
	if c == nil {
		panic("vector: nil comparator")
	}
	v := &Vector[T]{
		items:  make([]T, max(1, size)),
		cmp:    c,
		defCmp: c,
	}
	v.refs.Store(1)
	return v
}

// ComparePointers orders pointer handles by address, i.e. by identity.
func ComparePointers[E any](a, b *E) int {
	return cmp.Compare(uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b)))
}

// Destroy passes every remaining item to the destructor (last to first),
// releases the storage and returns the attached context.
// The vector must not be used afterwards.
func (v *Vector[T]) Destroy() any {
	if v.destroy != nil {
		for v.n > 0 {
			v.n--
			v.destroy(v.items[v.n])
		}
	}
	ctx := v.context
	v.items = nil
	v.n = 0
	v.context = nil
	v.gen++
	return ctx
}

// IRef increments the reference count and returns v.
func (v *Vector[T]) IRef() *Vector[T] {
	v.refs.Add(1)
	return v
}

// DRef decrements the reference count and destroys the vector when it
// reaches zero. Returns true if the vector was destroyed.
func (v *Vector[T]) DRef() bool {
	if v.refs.Add(-1) > 0 {
		return false
	}
	v.Destroy()
	return true
}

// Refs returns the current reference count.
func (v *Vector[T]) Refs() int64 {
	return v.refs.Load()
}

// Len returns the number of items.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of slots currently allocated.
func (v *Vector[T]) Cap() int {
	return len(v.items)
}

// Data returns the live items. The slice aliases the vector's storage and
// is invalidated by any structural mutation.
func (v *Vector[T]) Data() []T {
	return v.items[:v.n]
}

// SetComparator sets the comparator. nil restores the default one.
func (v *Vector[T]) SetComparator(c Comparator[T]) *Vector[T] {
	if c == nil {
		c = v.defCmp
	}
	v.cmp = c
	return v
}

// Comparator returns the active comparator.
func (v *Vector[T]) Comparator() Comparator[T] {
	return v.cmp
}

// SetDestructor sets the destructor. nil means removed items are simply
// forgotten.
func (v *Vector[T]) SetDestructor(d Destructor[T]) *Vector[T] {
	v.destroy = d
	return v
}

// Destructor returns the destructor, or nil.
func (v *Vector[T]) Destructor() Destructor[T] {
	return v.destroy
}

// SetContext attaches an arbitrary value to the vector.
func (v *Vector[T]) SetContext(ctx any) *Vector[T] {
	v.context = ctx
	return v
}

// Context returns the attached value.
func (v *Vector[T]) Context() any {
	return v.context
}

// SetLimit caps the capacity the vector may grow to. 0 removes the cap.
func (v *Vector[T]) SetLimit(n int) *Vector[T] {
	v.limit = store.Limit(n)
	return v
}

// Limit returns the capacity cap, 0 if unlimited.
func (v *Vector[T]) Limit() int {
	return int(v.limit)
}

// DestroyItem passes x to the destructor, if one is set.
func (v *Vector[T]) DestroyItem(x T) *Vector[T] {
	if v.destroy != nil {
		v.destroy(x)
	}
	return v
}

// realloc moves the live items into fresh storage of exactly size slots.
// size MUST be >= v.n.
func (v *Vector[T]) realloc(size int) {
	items := make([]T, size)
	copy(items, v.items[:v.n])
	v.items = items
	v.gen++
}

// reserve makes room for at least need items, growing to exactly need.
func (v *Vector[T]) reserve(need int) error {
	if need <= len(v.items) {
		return nil
	}
	if err := v.limit.Check(need); err != nil {
		return err
	}
	v.realloc(need)
	return nil
}
