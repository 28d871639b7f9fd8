package life_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/life"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
rules: B36/S23
rate: 30
generations: 100
poll: 2ms
max_cells: 5000
`)
	cfg, err := life.LoadConfig(path)
	require.NoError(t, err)

	want := life.DefaultConfig()
	want.Rules = "B36/S23"
	want.Rate = 30
	want.Generations = 100
	want.Poll = 2 * time.Millisecond
	want.MaxCells = 5000
	require.Equal(t, want, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for _, body := range []string{
		"rules: S23",
		"rate: 0",
		"max_cells: -1",
		"max_inputs: 0",
		"poll: -1s",
		"rate: [",
	} {
		_, err := life.LoadConfig(writeConfig(t, body))
		require.Error(t, err, body)
	}

	_, err := life.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfig(t *testing.T) {
	require.NoError(t, life.DefaultConfig().Validate())
}
