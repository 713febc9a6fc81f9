package rules

import (
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
)

// Placer finds free cells on a grid by rejection sampling.
type Placer struct {
	Grid Grid
	Rand *rand.Rand
}

// candidate generates one placement attempt. It returns false when no
// candidate can be generated at all, which counts as a failed attempt.
type candidate func() ([]board.Point, bool)

// PlaceCell samples the whole grid until a free cell is found. Once the
// sampling budget of one draw per cell is spent it falls back to choosing
// among the remaining free cells, so it only fails when the grid is full.
func (pl Placer) PlaceCell(occ Occupancy) (board.Point, bool) {
	for i := 0; i < pl.Grid.Cells(); i++ {
		p := pl.Grid.RandomPoint(pl.Rand)
		if !occ.IsOccupied(p) {
			return p, true
		}
	}

	open := pl.unoccupiedPoints(occ)
	if len(open) == 0 {
		return board.Point{}, false
	}
	return open[pl.Rand.Intn(len(open))], true
}

func (pl Placer) unoccupiedPoints(occ Occupancy) []board.Point {
	candidatePoints := []board.Point{}
	for x := int32(0); x < pl.Grid.Cols(); x++ {
		for y := int32(0); y < pl.Grid.Rows(); y++ {
			p := board.Point{X: x, Y: y}
			if !occ.IsOccupied(p) {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}

// placeBounded tries up to attempts candidates and returns the first that
// does not overlap anything. Running out of attempts is not an error, the
// caller retries on a later cycle.
func (pl Placer) placeBounded(occ Occupancy, attempts int, next candidate) ([]board.Point, bool) {
	for i := 0; i < attempts; i++ {
		points, ok := next()
		if !ok {
			continue
		}
		if !occ.IsOccupiedBySet(points) {
			return points, true
		}
	}
	return nil, false
}

// PlaceObstacle places a single obstacle at least margin cells away from the
// edges, within a bounded number of attempts.
func (pl Placer) PlaceObstacle(occ Occupancy, margin int32, attempts int) (board.Point, bool) {
	points, ok := pl.placeBounded(occ, attempts, func() ([]board.Point, bool) {
		p, ok := pl.Grid.RandomPointIn(pl.Rand,
			margin, pl.Grid.Cols()-1-margin,
			margin, pl.Grid.Rows()-1-margin,
		)
		return []board.Point{p}, ok
	})
	if !ok {
		return board.Point{}, false
	}
	return points[0], true
}

// WallCandidate draws a random orientation and an origin such that every
// cell of a wall of the given length stays inside the margin.
func (pl Placer) WallCandidate(length int, margin int32) (board.Wall, bool) {
	l := int32(length)
	cols, rows := pl.Grid.Cols(), pl.Grid.Rows()

	orientation := board.Horizontal
	if pl.Rand.Intn(2) == 1 {
		orientation = board.Vertical
	}

	var origin board.Point
	var ok bool
	if orientation == board.Horizontal {
		origin, ok = pl.Grid.RandomPointIn(pl.Rand, margin, cols-l-margin, margin, rows-1-margin)
	} else {
		origin, ok = pl.Grid.RandomPointIn(pl.Rand, margin, cols-1-margin, margin, rows-l-margin)
	}
	if !ok {
		return board.Wall{}, false
	}
	return board.NewWall(orientation, origin, length), true
}

// PlaceWall places a whole wall or nothing, within a bounded number of
// attempts.
func (pl Placer) PlaceWall(occ Occupancy, length int, margin int32, attempts int) (board.Wall, bool) {
	var placed board.Wall
	_, ok := pl.placeBounded(occ, attempts, func() ([]board.Point, bool) {
		w, ok := pl.WallCandidate(length, margin)
		placed = w
		return w.Cells, ok
	})
	if !ok {
		return board.Wall{}, false
	}
	return placed, true
}
