package rules

import (
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/stretchr/testify/require"
)

var commonGrid = Grid{Width: 400, Height: 400, CellSize: 20}

func TestDeathCauseWallCollision(t *testing.T) {
	points := []board.Point{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		death := checkForDeath(commonGrid, &board.Snake{Body: []board.Point{p}}, board.NewPointSet(), 3)
		require.NotNil(t, death, "%v", p)
		require.Equal(t, DeathCauseWallCollision, death.Cause)
		require.Equal(t, int64(3), death.Turn)
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	snake := &board.Snake{Body: []board.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 4},
		{X: 4, Y: 4},
		{X: 4, Y: 5},
		{X: 5, Y: 5},
	}}
	death := checkForDeath(commonGrid, snake, board.NewPointSet(), 7)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseSnakeSelfCollision, death.Cause)
	require.Equal(t, int64(7), death.Turn)
}

func TestDeathCauseObstacleCollision(t *testing.T) {
	snake := &board.Snake{Body: []board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}}
	death := checkForDeath(commonGrid, snake, board.NewPointSet(board.Point{X: 5, Y: 5}), 2)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseObstacleCollision, death.Cause)
}

func TestDeathOutOfBoundsWinsOverObstacle(t *testing.T) {
	head := board.Point{X: 20, Y: 0}
	death := checkForDeath(commonGrid, &board.Snake{Body: []board.Point{head}}, board.NewPointSet(head), 1)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseWallCollision, death.Cause)
}

func TestNoDeath(t *testing.T) {
	snake := &board.Snake{Body: []board.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}}
	obstacles := board.NewPointSet(board.Point{X: 6, Y: 5})
	require.Nil(t, checkForDeath(commonGrid, snake, obstacles, 1))
	require.Nil(t, checkForDeath(commonGrid, &board.Snake{}, obstacles, 1))
}
