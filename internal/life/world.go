package life

import (
	"slices"

	"github.com/randomizedcoder/axcontainers/internal/stack"
	"github.com/randomizedcoder/axcontainers/internal/store"
	"github.com/randomizedcoder/axcontainers/internal/vector"
)

// World is an unbounded Game of Life board.
//
// Live cells are kept in a vector that owns them: every cell it drops goes
// back to the pool. Between generations the vector may be unsorted and
// hold duplicates; Step sorts and merges them first.
type World struct {
	rules   Rules
	pool    *Pool[Cell]
	cells   *vector.Vector[*Cell]
	backups *stack.Stack[*vector.Vector[*Cell]]
}

// NewWorld creates an empty world drawing cells from pool.
func NewWorld(rules Rules, pool *Pool[Cell]) *World {
	w := &World{rules: rules, pool: pool}
	w.cells = w.newCells()
	w.backups = stack.New[*vector.Vector[*Cell]]().
		SetDestructor(func(v *vector.Vector[*Cell]) { v.Destroy() })
	return w
}

func (w *World) newCells() *vector.Vector[*Cell] {
	return vector.NewFunc(store.DefaultSize, CompareCells).SetDestructor(w.pool.Put)
}

// Close returns every cell, including those held by backups, to the pool.
func (w *World) Close() {
	w.backups.Destroy()
	w.cells.Destroy()
}

// Rules returns the rules in effect.
func (w *World) Rules() Rules {
	return w.rules
}

// SetRules replaces the rules from the next generation on.
func (w *World) SetRules(r Rules) {
	w.rules = r
}

// Population returns the number of live cells. Right after Step it is
// exact; it may overcount cells placed twice since.
func (w *World) Population() int {
	return w.cells.Len()
}

// Cells returns a sorted copy of the live cells.
func (w *World) Cells() []Cell {
	out := make([]Cell, 0, w.cells.Len())
	for _, c := range w.cells.Snapshot().All() {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Cell) int { return CompareCells(&a, &b) })
	return slices.CompactFunc(out, func(a, b Cell) bool { return a == b })
}

// Place makes (x, y) alive.
func (w *World) Place(x, y int64) error {
	c, err := w.pool.Get()
	if err != nil {
		return err
	}
	*c = Cell{X: x, Y: y}
	if err := w.cells.Push(c); err != nil {
		w.pool.Put(c)
		return err
	}
	return nil
}

// Load places every cell of p, offset by (dx, dy).
func (w *World) Load(p Pattern, dx, dy int64) error {
	for _, c := range p.Cells {
		if err := w.Place(c.X+dx, c.Y+dy); err != nil {
			return err
		}
	}
	return nil
}

// Remove kills (x, y) and returns how many cells were removed.
func (w *World) Remove(x, y int64) int {
	target := Cell{X: x, Y: y}
	before := w.cells.Len()
	w.cells.Filter(func(c *Cell) bool {
		return CompareCells(c, &target) != 0
	})
	return before - w.cells.Len()
}

// Clear kills every cell. Backups are kept.
func (w *World) Clear() {
	w.cells.Clear()
}

// Backup pushes a deep copy of the current cells onto the backup stack.
func (w *World) Backup() error {
	var err error
	b := w.cells.Copy().Map(func(c *Cell) *Cell {
		if err != nil {
			return nil
		}
		fresh, gerr := w.pool.Get()
		if gerr != nil {
			err = gerr
			return nil
		}
		*fresh = *c
		return fresh
	}).SetDestructor(w.pool.Put)

	if err == nil {
		err = w.backups.Push(b)
	}
	if err != nil {
		b.Destroy()
		return err
	}
	return nil
}

// Restore replaces the current cells with the most recent backup and
// reports whether there was one.
func (w *World) Restore() bool {
	b, ok := w.backups.Pop()
	if !ok {
		return false
	}
	w.cells.Destroy()
	w.cells = b
	return true
}

// Backups returns the number of stored backups.
func (w *World) Backups() int {
	return w.backups.Len()
}

// Step advances the world by one generation.
//
// On error the world holds the previous generation's cells, sorted and
// without duplicates.
func (w *World) Step() error {
	potentials := w.newCells()
	defer potentials.Destroy()
	survivors := vector.NewFunc(w.cells.Len(), vector.ComparePointers[Cell])
	defer survivors.Destroy()

	dedupe(w.cells.Sort())

	var err error
	w.cells.Foreach(func(c *Cell) bool {
		err = w.judge(c, survivors, potentials)
		return err == nil
	})
	if err != nil {
		return err
	}

	potentials.Filter(w.spawns)

	// survivors is an in-order subsequence of cells, so with it reversed
	// its top is always the next cell to keep.
	survivors.Reverse()
	w.cells.Filter(func(c *Cell) bool {
		if top, ok := survivors.Top(); ok && top == c {
			survivors.Pop()
			return true
		}
		return false
	})
	return w.cells.Extend(potentials)
}

var offsets = [8][2]int64{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// judge counts c's live neighbours, records c as a survivor if the rules
// allow, and adds each dead neighbour to the sorted potentials.
func (w *World) judge(c *Cell, survivors, potentials *vector.Vector[*Cell]) error {
	// Only the prefix is sorted until insertionSortTail runs. The
	// neighbours of one cell are distinct, so the unsorted tail never
	// needs searching.
	sorted := potentials.Data()[:potentials.Len()]
	neighbours, added := 0, 0
	for _, o := range offsets {
		n := Cell{X: c.X + o[0], Y: c.Y + o[1]}
		if _, ok := w.cells.BinarySearch(&n); ok {
			neighbours++
			continue
		}
		if _, ok := slices.BinarySearchFunc(sorted, &n, CompareCells); ok {
			continue
		}
		p, err := w.pool.Get()
		if err != nil {
			return err
		}
		*p = n
		if err := potentials.Push(p); err != nil {
			w.pool.Put(p)
			return err
		}
		added++
	}
	insertionSortTail(potentials, added)

	if w.rules.Survival.Match(neighbours) {
		return survivors.Push(c)
	}
	return nil
}

// spawns reports whether the dead cell c comes alive.
func (w *World) spawns(c *Cell) bool {
	limit := w.rules.Birth.Max()
	neighbours := 0
	for _, o := range offsets {
		n := Cell{X: c.X + o[0], Y: c.Y + o[1]}
		if _, ok := w.cells.BinarySearch(&n); ok {
			neighbours++
			if neighbours > limit {
				return false
			}
		}
	}
	return w.rules.Birth.Match(neighbours)
}

// insertionSortTail sorts the last n items of v into the rest, which must
// already be sorted.
func insertionSortTail[T any](v *vector.Vector[T], n int) {
	if n <= 0 {
		return
	}
	cmp := v.Comparator()
	s := v.Snapshot()
	for i := s.Len() - n; i < s.Len(); i++ {
		for j := i; j > 0 && cmp(s.At(j), s.At(j-1)) < 0; j-- {
			s.Swap(j, j-1)
		}
	}
}
