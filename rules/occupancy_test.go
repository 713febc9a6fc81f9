package rules

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

func TestSessionIsOccupied(t *testing.T) {
	s := newTestSession(t, 1)
	clearBoard(s, []board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, board.DirectionRight, pt(10, 10))
	s.Bonus = pt(11, 10)
	s.Obstacles.Add(board.Point{X: 12, Y: 10})

	for _, p := range []board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}} {
		require.True(t, s.IsOccupied(p), "%v", p)
	}
	require.False(t, s.IsOccupied(board.Point{X: 13, Y: 10}))
}

func TestIsOccupiedBySet(t *testing.T) {
	occ := setOccupancy{board.NewPointSet(board.Point{X: 1, Y: 1})}

	require.False(t, occ.IsOccupiedBySet(nil))
	require.False(t, occ.IsOccupiedBySet([]board.Point{{X: 2, Y: 1}, {X: 3, Y: 1}}))
	require.True(t, occ.IsOccupiedBySet([]board.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}))
	require.True(t, occ.IsOccupiedBySet([]board.Point{{X: 4, Y: 4}, {X: 4, Y: 4}}), "overlapping candidates")
}
