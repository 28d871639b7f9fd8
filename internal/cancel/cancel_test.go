package cancel_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/cancel"
)

func TestContext(t *testing.T) {
	parent, stop := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)
	require.False(t, c.Done())

	stop()
	require.True(t, c.Done(), "parent cancellation propagates")
	require.Error(t, c.Context().Err())

	c.Cancel() // idempotent
	require.True(t, c.Done())
}

func TestFlag(t *testing.T) {
	var f cancel.Flag
	require.False(t, f.Done())
	f.Cancel()
	require.True(t, f.Done())
	f.Reset()
	require.False(t, f.Done())
}

func TestAny(t *testing.T) {
	var quit cancel.Flag
	sig := cancel.NewContext(context.Background())
	a := cancel.Any{sig, &quit}
	require.False(t, a.Done())

	quit.Cancel()
	require.True(t, a.Done())
	require.False(t, sig.Done())

	a.Cancel()
	require.True(t, sig.Done())
}

// TestFlag_Race polls and cancels concurrently.
// Run with: go test -race ./internal/cancel
func TestFlag_Race(t *testing.T) {
	var (
		f  cancel.Flag
		wg sync.WaitGroup
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10000 {
				_ = f.Done()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Cancel()
	}()
	wg.Wait()
	require.True(t, f.Done())
}
