package life_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/randomizedcoder/axcontainers/internal/cancel"
	"github.com/randomizedcoder/axcontainers/internal/life"
)

type harness struct {
	world  *life.World
	inputs *life.Inputs
	reg    *prometheus.Registry
	runner *life.Runner
}

func newHarness(t *testing.T, cfg life.Config, mb *life.Mailbox, stop cancel.Canceler, cells ...life.Cell) *harness {
	t.Helper()
	w, _ := newWorld(t, 0, cells...)
	t.Cleanup(w.Close)

	inputs := life.NewInputs(life.NewPool[life.Input](0), cfg.MaxInputs)
	t.Cleanup(inputs.Close)

	reg := prometheus.NewRegistry()
	m, err := life.NewMetrics(reg)
	require.NoError(t, err)

	return &harness{
		world:  w,
		inputs: inputs,
		reg:    reg,
		runner: life.NewRunner(cfg, w, inputs, mb, stop, zap.NewNop(), m),
	}
}

func fastConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Rate = 1000
	cfg.Poll = 0
	cfg.Report = 0
	return cfg
}

func TestRunner_Generations(t *testing.T) {
	cfg := fastConfig()
	cfg.Generations = 3
	h := newHarness(t, cfg, nil, nil, blinkerH...)

	require.NoError(t, h.runner.Run())
	require.EqualValues(t, 3, h.runner.Generation())
	requireCells(t, blinkerV, h.world)

	require.NoError(t, testutil.GatherAndCompare(h.reg, strings.NewReader(`
# HELP life_generations_total Generations computed.
# TYPE life_generations_total counter
life_generations_total 3
# HELP life_population Live cells after the last generation.
# TYPE life_population gauge
life_population 3
`), "life_generations_total", "life_population"))
}

func TestRunner_Inputs(t *testing.T) {
	cfg := fastConfig()
	cfg.Paused = true
	h := newHarness(t, cfg, nil, nil)

	for _, line := range []string{
		"place 0 1", "place 1 1", "place 2 1",
		"backup",
		"rate +24",
		"rate -2000",
		"clear",
		"restore",
		"quit",
	} {
		in, err := life.ParseInput(line)
		require.NoError(t, err)
		require.NoError(t, h.inputs.Add(in))
	}

	require.NoError(t, h.runner.Run())
	require.True(t, h.runner.Paused())
	require.Zero(t, h.runner.Generation())
	require.Equal(t, 1, h.runner.Rate())
	requireCells(t, blinkerH, h.world)

	kinds, err := testutil.GatherAndCount(h.reg, "life_inputs_total")
	require.NoError(t, err)
	require.Equal(t, 6, kinds, "one series per input kind seen")
}

func TestRunner_Mailbox(t *testing.T) {
	mb, err := life.NewMailbox(64, 1)
	require.NoError(t, err)
	cfg := fastConfig()
	cfg.Generations = 2
	cfg.Paused = true
	h := newHarness(t, cfg, mb, nil)

	pid := mb.Producer()
	for _, in := range []life.Input{
		{Kind: life.InputPlace, X: 0, Y: 0},
		{Kind: life.InputPlace, X: 0, Y: 1},
		{Kind: life.InputPlace, X: 1, Y: 0},
		{Kind: life.InputPlace, X: 1, Y: 1},
		{Kind: life.InputPause},
	} {
		require.True(t, mb.Post(pid, in))
	}

	require.NoError(t, h.runner.Run())
	require.False(t, h.runner.Paused())
	require.EqualValues(t, 2, h.runner.Generation())
	requireCells(t, block, h.world)
}

func TestRunner_Stop(t *testing.T) {
	stop := cancel.NewContext(context.Background())
	stop.Cancel()
	h := newHarness(t, fastConfig(), nil, stop, block...)

	require.NoError(t, h.runner.Run())
	require.Zero(t, h.runner.Generation())
}

func TestRunner_StepError(t *testing.T) {
	pool := life.NewPool[life.Cell](3)
	w := life.NewWorld(life.Conway, pool)
	for _, c := range blinkerH {
		require.NoError(t, w.Place(c.X, c.Y))
	}
	defer w.Close()

	inputs := life.NewInputs(life.NewPool[life.Input](0), 4)
	defer inputs.Close()
	m, err := life.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	r := life.NewRunner(fastConfig(), w, inputs, nil, nil, zap.NewNop(), m)
	require.ErrorIs(t, r.Run(), life.ErrPoolExhausted)
}

func TestNewMetrics_Duplicate(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := life.NewMetrics(reg)
	require.NoError(t, err)
	_, err = life.NewMetrics(reg)
	require.Error(t, err)
}
