package rules

import (
	"context"
	"math/rand"
	"testing"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/store"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, seed int64) *Session {
	return newTestSessionWith(t, DefaultConfig(), seed)
}

func newTestSessionWith(t *testing.T, cfg Config, seed int64) *Session {
	scores := NewScoreboard(context.Background(), store.InMemStore())
	s, err := NewSession(cfg, scores, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	require.True(t, s.Start())
	return s
}

// clearBoard replaces the randomly laid out start with an explicit one.
func clearBoard(s *Session, body []board.Point, heading board.Direction, food *board.Point) {
	s.Snake = &board.Snake{Body: body}
	s.Heading = heading
	s.pending = ""
	s.Food = food
	s.Bonus = nil
	s.Obstacles = board.NewPointSet()
	s.Walls = board.NewPointSet()
}

func pt(x, y int32) *board.Point {
	return &board.Point{X: x, Y: y}
}

// setOccupancy is an Occupancy backed by a plain set of points.
type setOccupancy struct{ *board.PointSet }

func (o setOccupancy) IsOccupied(p board.Point) bool { return o.Contains(p) }

func (o setOccupancy) IsOccupiedBySet(points []board.Point) bool {
	return occupiedBySet(o, points)
}
