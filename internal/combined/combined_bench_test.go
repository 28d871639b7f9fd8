package combined_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/randomizedcoder/axcontainers/internal/cancel"
	"github.com/randomizedcoder/axcontainers/internal/life"
	"github.com/randomizedcoder/axcontainers/internal/tick"
)

// Sink variables
var sinkInt int
var sinkBool bool

// ============================================================================
// Stop + tick checks (the idle runner loop)
// ============================================================================

// BenchmarkLoop_StopTick_Context polls a context-backed stop signal the way
// the runner does when started from a signal.NotifyContext.
func BenchmarkLoop_StopTick_Context(b *testing.B) {
	stop := cancel.NewContext(context.Background())
	defer stop.Cancel()
	ticker := tick.NewRate(1)
	b.ReportAllocs()
	b.ResetTimer()

	var stopped, ticked bool
	for i := 0; i < b.N; i++ {
		stopped = stop.Done()
		ticked = ticker.Tick()
	}
	sinkBool = stopped || ticked
}

// BenchmarkLoop_StopTick_Any is the runner's actual check: the outside
// stop signal combined with the quit flag.
func BenchmarkLoop_StopTick_Any(b *testing.B) {
	ctx := cancel.NewContext(context.Background())
	defer ctx.Cancel()
	var quit cancel.Flag
	stop := cancel.Any{ctx, &quit}
	ticker := tick.NewRate(1)
	b.ReportAllocs()
	b.ResetTimer()

	var stopped, ticked bool
	for i := 0; i < b.N; i++ {
		stopped = stop.Done()
		ticked = ticker.Tick()
	}
	sinkBool = stopped || ticked
}

// BenchmarkLoop_StopTick_Flag is the floor: a single atomic load for stop.
func BenchmarkLoop_StopTick_Flag(b *testing.B) {
	var stop cancel.Flag
	ticker := tick.NewRate(1)
	b.ReportAllocs()
	b.ResetTimer()

	var stopped, ticked bool
	for i := 0; i < b.N; i++ {
		stopped = stop.Done()
		ticked = ticker.Tick()
	}
	sinkBool = stopped || ticked
}

// ============================================================================
// Input backlog
// ============================================================================

// BenchmarkInputs_AddNext measures one input through the pooled backlog.
func BenchmarkInputs_AddNext(b *testing.B) {
	in := life.NewInputs(life.NewPool[life.Input](0), life.MaxPendingInputs)
	defer in.Close()
	x := life.Input{Kind: life.InputPlace, X: 1, Y: 2}
	b.ReportAllocs()
	b.ResetTimer()

	var got life.Input
	for i := 0; i < b.N; i++ {
		_ = in.Add(x)
		got, _ = in.Next()
	}
	sinkInt = int(got.X)
}

// BenchmarkInputs_Overflow keeps the backlog full so every Add drops the
// oldest input.
func BenchmarkInputs_Overflow(b *testing.B) {
	in := life.NewInputs(life.NewPool[life.Input](0), life.MaxPendingInputs)
	defer in.Close()
	for i := 0; i < life.MaxPendingInputs; i++ {
		_ = in.Add(life.Input{Kind: life.InputPause})
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = in.Add(life.Input{Kind: life.InputRate, Delta: i})
	}
	sinkInt = in.Len()
}

// ============================================================================
// Generations
// ============================================================================

func soup(b *testing.B, size int64, density float64) *life.World {
	b.Helper()
	w := life.NewWorld(life.Conway, life.NewPool[life.Cell](0))
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in benchmarks
	for x := int64(0); x < size; x++ {
		for y := int64(0); y < size; y++ {
			if rng.Float64() < density {
				if err := w.Place(x, y); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	return w
}

func benchmarkStep(b *testing.B, size int64) {
	b.StopTimer()
	w := soup(b, size, 0.35)
	defer w.Close()
	if err := w.Backup(); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		// Restart from the soup every 64 generations so the board does not
		// settle into still lifes.
		if i%64 == 63 {
			b.StopTimer()
			w.Restore()
			if err := w.Backup(); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
		if err := w.Step(); err != nil {
			b.Fatal(err)
		}
	}
	sinkInt = w.Population()
}

func BenchmarkWorld_Step_32(b *testing.B)  { benchmarkStep(b, 32) }
func BenchmarkWorld_Step_128(b *testing.B) { benchmarkStep(b, 128) }

func BenchmarkWorld_Backup(b *testing.B) {
	b.StopTimer()
	w := soup(b, 64, 0.35)
	defer w.Close()
	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		if err := w.Backup(); err != nil {
			b.Fatal(err)
		}
		w.Restore()
	}
	sinkInt = w.Backups()
}
