package vector

import "github.com/randomizedcoder/axcontainers/internal/store"

// derive returns an empty vector with v's comparators, context and limit
// but without its destructor.
func (v *Vector[T]) derive(size int) *Vector[T] {
	d := NewFunc(size, v.defCmp)
	d.cmp = v.cmp
	d.context = v.context
	d.limit = v.limit
	return d
}

// Copy returns a shallow duplicate with the same capacity. Handles are
// copied by value; the destructor is not carried over so that shared
// handles are never destroyed twice.
func (v *Vector[T]) Copy() *Vector[T] {
	c := v.derive(len(v.items))
	c.n = copy(c.items, v.items[:v.n])
	return c
}

// Extend moves every item of o onto the end of v, leaving o empty.
// Extending a vector with itself is a no-op.
func (v *Vector[T]) Extend(o *Vector[T]) error {
	if v == o {
		return nil
	}
	if err := v.reserve(v.n + o.n); err != nil {
		return err
	}
	copy(v.items[v.n:], o.items[:o.n])
	v.n += o.n
	v.gen++

	clear(o.items[:o.n])
	o.n = 0
	o.gen++
	return nil
}

// Concat copies every item of o onto the end of v, leaving o unchanged.
// Both vectors then hold the same handles; at most one of them should own
// them through a destructor.
func (v *Vector[T]) Concat(o *Vector[T]) error {
	src := o.items[:o.n]
	if err := v.reserve(v.n + len(src)); err != nil {
		return err
	}
	copy(v.items[v.n:], src)
	v.n += len(src)
	v.gen++
	return nil
}

// Slice returns a new vector holding the items in [i, j), clamped to the
// live range. Negative indices count from the end. The destructor is not
// carried over.
func (v *Vector[T]) Slice(i, j int) *Vector[T] {
	i, j = store.Clamp(i, v.n), store.Clamp(j, v.n)
	s := v.derive(v.n)
	if i < j {
		s.n = copy(s.items, v.items[i:j])
	}
	return s
}

// RSlice is like Slice but the new vector holds the items in reverse order.
func (v *Vector[T]) RSlice(i, j int) *Vector[T] {
	s := v.Slice(i, j)
	store.Reverse(s.items[:s.n])
	return s
}
