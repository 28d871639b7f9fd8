package life_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/life"
)

func newWorld(t *testing.T, limit int, cells ...life.Cell) (*life.World, *life.Pool[life.Cell]) {
	t.Helper()
	pool := life.NewPool[life.Cell](limit)
	w := life.NewWorld(life.Conway, pool)
	for _, c := range cells {
		require.NoError(t, w.Place(c.X, c.Y))
	}
	return w, pool
}

func sorted(cells []life.Cell) []life.Cell {
	out := slices.Clone(cells)
	slices.SortFunc(out, func(a, b life.Cell) int { return life.CompareCells(&a, &b) })
	return out
}

func translate(cells []life.Cell, dx, dy int64) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, c := range cells {
		out[i] = life.Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

func requireCells(t *testing.T, want []life.Cell, w *life.World) {
	t.Helper()
	if diff := cmp.Diff(sorted(want), w.Cells()); diff != "" {
		t.Errorf("World.Cells() diff (-want +got):\n%s", diff)
	}
}

var (
	blinkerH = []life.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	blinkerV = []life.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	block    = []life.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
)

func TestWorld_StillLife(t *testing.T) {
	w, pool := newWorld(t, 0, block...)
	for range 3 {
		require.NoError(t, w.Step())
		requireCells(t, block, w)
	}
	w.Close()
	require.Zero(t, pool.Live(), "every cell returned to the pool")
}

func TestWorld_Blinker(t *testing.T) {
	w, pool := newWorld(t, 0, blinkerH...)
	require.NoError(t, w.Step())
	requireCells(t, blinkerV, w)
	require.Equal(t, 3, w.Population())
	require.NoError(t, w.Step())
	requireCells(t, blinkerH, w)

	w.Close()
	require.Zero(t, pool.Live())
}

func TestWorld_Glider(t *testing.T) {
	w, pool := newWorld(t, 0, glider...)
	for gen := 1; gen <= 8; gen++ {
		require.NoError(t, w.Step())
		require.Equal(t, 5, w.Population(), "generation %d", gen)
	}
	requireCells(t, translate(glider, 2, 2), w)

	w.Close()
	require.Zero(t, pool.Live())
}

func TestWorld_Isolated(t *testing.T) {
	w, _ := newWorld(t, 0, life.Cell{X: 5, Y: 5}, life.Cell{X: -40, Y: 7})
	require.NoError(t, w.Step())
	require.Zero(t, w.Population())
	require.Empty(t, w.Cells())
}

func TestWorld_Duplicates(t *testing.T) {
	w, pool := newWorld(t, 0, blinkerH...)
	require.NoError(t, w.Place(1, 1))
	require.NoError(t, w.Place(1, 1))
	require.Equal(t, 5, w.Population())
	requireCells(t, blinkerH, w)

	require.NoError(t, w.Step())
	requireCells(t, blinkerV, w)
	require.Equal(t, 3, w.Population(), "duplicates merged")

	w.Close()
	require.Zero(t, pool.Live())
}

func TestWorld_Remove(t *testing.T) {
	w, _ := newWorld(t, 0, block...)
	require.NoError(t, w.Place(0, 0))
	require.Equal(t, 2, w.Remove(0, 0))
	require.Zero(t, w.Remove(0, 0))
	requireCells(t, block[1:], w)

	// Three cells of a block form an L that completes itself.
	require.NoError(t, w.Step())
	requireCells(t, block, w)

	w.Clear()
	require.Zero(t, w.Population())
}

func TestWorld_BackupRestore(t *testing.T) {
	w, pool := newWorld(t, 0, blinkerH...)
	require.False(t, w.Restore())

	require.NoError(t, w.Backup())
	require.Equal(t, 1, w.Backups())

	require.NoError(t, w.Step())
	requireCells(t, blinkerV, w)
	require.NoError(t, w.Backup())
	w.Clear()
	require.NoError(t, w.Place(9, 9))

	require.True(t, w.Restore())
	requireCells(t, blinkerV, w)
	require.True(t, w.Restore())
	requireCells(t, blinkerH, w)
	require.Zero(t, w.Backups())

	// The restored cells are a live world of their own.
	require.NoError(t, w.Step())
	requireCells(t, blinkerV, w)

	w.Close()
	require.Zero(t, pool.Live())
}

func TestWorld_Load(t *testing.T) {
	p, err := life.ParseRLE(gliderRLE)
	require.NoError(t, err)
	w, _ := newWorld(t, 0)
	require.NoError(t, w.Load(p, 10, -3))
	requireCells(t, translate(glider, 10, -3), w)
}

func TestWorld_PoolExhausted(t *testing.T) {
	w, pool := newWorld(t, 4, blinkerH...)
	require.ErrorIs(t, w.Step(), life.ErrPoolExhausted)
	requireCells(t, blinkerH, w)
	require.Equal(t, 3, pool.Live(), "potentials went back to the pool")

	require.ErrorIs(t, w.Backup(), life.ErrPoolExhausted)
	require.Zero(t, w.Backups())
	require.Equal(t, 3, pool.Live())

	w.Close()
	require.Zero(t, pool.Live())
}

func TestWorld_Rules(t *testing.T) {
	highlife, err := life.ParseRules("B36/S23")
	require.NoError(t, err)

	w, _ := newWorld(t, 0, blinkerH...)
	require.Equal(t, life.Conway, w.Rules())
	w.SetRules(highlife)
	require.Equal(t, "B36/S23", w.Rules().String())

	// A blinker never sees six neighbours, so it blinks under HighLife too.
	require.NoError(t, w.Step())
	requireCells(t, blinkerV, w)
}

func TestWorld_Soup(t *testing.T) {
	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 0)) //nolint:gosec // Reproducibility is useful in tests
		w, pool := newWorld(t, 0)
		for range 300 {
			require.NoError(t, w.Place(rng.Int64N(30), rng.Int64N(30)))
		}

		for gen := 1; gen <= 5; gen++ {
			require.NoError(t, w.Step())
			require.Equal(t, len(w.Cells()), w.Population(), "seed %d generation %d: no duplicate cells", seed, gen)
			require.Equal(t, w.Population(), pool.Live(), "seed %d generation %d: only live cells are outstanding", seed, gen)
		}
		w.Close()
		require.Zero(t, pool.Live())
	}
}
