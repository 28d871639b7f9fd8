package tick_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/tick"
)

func TestInterval(t *testing.T) {
	require.Equal(t, time.Second, tick.Interval(0))
	require.Equal(t, time.Second, tick.Interval(-5))
	require.Equal(t, 100*time.Millisecond, tick.Interval(10))
}

func TestRate(t *testing.T) {
	r := tick.NewRate(20) // 50ms
	defer r.Stop()

	// Should not tick immediately
	require.False(t, r.Tick(), "Tick() immediately after creation")

	// Wait for interval + buffer
	time.Sleep(r.Interval() + 20*time.Millisecond)
	require.True(t, r.Tick(), "Tick() after interval elapsed")

	// Should not tick again immediately
	require.False(t, r.Tick(), "Tick() immediately after tick")
}

func TestRate_Reset(t *testing.T) {
	r := tick.NewRate(20)
	time.Sleep(r.Interval() + 20*time.Millisecond)
	r.Reset()
	require.False(t, r.Tick(), "Tick() after Reset()")
}

func TestRate_Adjust(t *testing.T) {
	r := tick.NewRate(6)
	require.Equal(t, 6, r.PerSecond())
	require.Equal(t, 16, r.Adjust(10))
	require.Equal(t, 1, r.Adjust(-100), "rate never drops below 1")

	r.SetRate(0)
	require.Equal(t, 1, r.PerSecond())
	require.Equal(t, time.Second, r.Interval())
}

func TestRate_Interface(t *testing.T) {
	var tk tick.Ticker = tick.NewRate(tick.DefaultRate)
	tk.Reset()
	tk.Stop()
}
