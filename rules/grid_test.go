package rules

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(800, 600, 20)
	require.NoError(t, err)
	require.Equal(t, int32(40), g.Cols())
	require.Equal(t, int32(30), g.Rows())
	require.Equal(t, 1200, g.Cells())

	invalid := [][3]int32{
		{0, 600, 20},
		{800, -20, 20},
		{800, 600, 0},
		{810, 600, 20},
		{800, 610, 20},
	}
	for _, dims := range invalid {
		_, err := NewGrid(dims[0], dims[1], dims[2])
		require.Equal(t, ErrInvalidGrid, err, "%v", dims)
	}
}

func TestGridContains(t *testing.T) {
	g, err := NewGrid(800, 600, 20)
	require.NoError(t, err)

	require.True(t, g.Contains(board.Point{X: 0, Y: 0}))
	require.True(t, g.Contains(board.Point{X: 39, Y: 29}))
	for _, p := range []board.Point{{X: -1, Y: 1}, {X: 40, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 30}} {
		require.False(t, g.Contains(p), "%v", p)
	}
}

func TestGridRandomPoint(t *testing.T) {
	g, err := NewGrid(100, 60, 20)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	seen := map[board.Point]bool{}
	for i := 0; i < 500; i++ {
		p := g.RandomPoint(rng)
		require.True(t, g.Contains(p), "%v", p)
		seen[p] = true
	}
	require.Len(t, seen, g.Cells(), "every cell of a 5x3 grid is eventually sampled")
}

func TestGridRandomPointIn(t *testing.T) {
	g, err := NewGrid(800, 600, 20)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		p, ok := g.RandomPointIn(rng, 2, 4, 7, 7)
		require.True(t, ok)
		require.True(t, p.X >= 2 && p.X <= 4, "%v", p)
		require.Equal(t, int32(7), p.Y)
	}

	_, ok := g.RandomPointIn(rng, 5, 4, 0, 1)
	require.False(t, ok)
}

func TestGridPixels(t *testing.T) {
	g, err := NewGrid(800, 600, 20)
	require.NoError(t, err)

	x, y := g.ToPixels(board.Point{X: 3, Y: 5})
	require.Equal(t, int32(60), x)
	require.Equal(t, int32(100), y)

	require.Equal(t, board.Point{X: 3, Y: 5}, g.FromPixels(60, 100))
	require.Equal(t, board.Point{X: 3, Y: 5}, g.FromPixels(79, 119))
	require.Equal(t, board.Point{X: -1, Y: 0}, g.FromPixels(-1, 0))
}
