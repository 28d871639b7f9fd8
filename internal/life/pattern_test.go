package life_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/life"
)

var glider = []life.Cell{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

const (
	gliderCells = "!Name: Glider\r\n!\r\n.O.\r\n..O\r\nOOO\r\n"
	gliderRLE   = "#N Glider\n#C comment\nx = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"
)

func TestParsePlaintext(t *testing.T) {
	p := life.ParsePlaintext(gliderCells)
	if diff := cmp.Diff(glider, p.Cells); diff != "" {
		t.Errorf("ParsePlaintext() diff (-want +got):\n%s", diff)
	}
	require.EqualValues(t, 3, p.Width)
	require.EqualValues(t, 3, p.Height)
	require.Empty(t, p.Rule)
}

func TestParseRLE(t *testing.T) {
	p, err := life.ParseRLE(gliderRLE)
	require.NoError(t, err)
	want := life.Pattern{Cells: glider, Width: 3, Height: 3, Rule: "B3/S23"}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("ParseRLE() diff (-want +got):\n%s", diff)
	}
}

func TestParseRLE_Runs(t *testing.T) {
	tests := []struct {
		in   string
		want []life.Cell
	}{
		{"2o2bo!", []life.Cell{{X: 0}, {X: 1}, {X: 4}}},
		{"o2$o!", []life.Cell{{X: 0, Y: 0}, {X: 0, Y: 2}}},
		{"o\n  o!ooo", []life.Cell{{X: 0}, {X: 1}}},
		{"12bo!", []life.Cell{{X: 12}}},
	}
	for _, tt := range tests {
		p, err := life.ParseRLE(tt.in)
		require.NoError(t, err, tt.in)
		if diff := cmp.Diff(tt.want, p.Cells); diff != "" {
			t.Errorf("ParseRLE(%q) diff (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseRLE_BadHeader(t *testing.T) {
	_, err := life.ParseRLE("x = three, y = 1\no!")
	require.ErrorIs(t, err, life.ErrPattern)
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, life.FormatRLE, life.FormatOf("glider.RLE", ""))
	require.Equal(t, life.FormatPlaintext, life.FormatOf("glider.cells", ""))
	require.Equal(t, life.FormatRLE, life.FormatOf("", gliderRLE))
	require.Equal(t, life.FormatPlaintext, life.FormatOf("-", gliderCells))

	_, err := life.ParsePattern(life.FormatUnknown, "")
	require.ErrorIs(t, err, life.ErrPattern)
}
