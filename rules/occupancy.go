package rules

import "github.com/battlesnakeio/arcade/board"

// Occupancy answers overlap questions for the placement engine.
type Occupancy interface {
	// IsOccupied is true when p holds a live entity.
	IsOccupied(p board.Point) bool
	// IsOccupiedBySet is true when any point is occupied or the points
	// overlap each other.
	IsOccupiedBySet(points []board.Point) bool
}

// IsOccupied reads through the session: snake body, food, bonus food and the
// obstacle set.
func (s *Session) IsOccupied(p board.Point) bool {
	if s.Snake != nil && s.Snake.Contains(p) {
		return true
	}
	if s.Food != nil && s.Food.Equal(p) {
		return true
	}
	if s.Bonus != nil && s.Bonus.Equal(p) {
		return true
	}
	return s.Obstacles.Contains(p)
}

// IsOccupiedBySet implements Occupancy.
func (s *Session) IsOccupiedBySet(points []board.Point) bool {
	return occupiedBySet(s, points)
}

func occupiedBySet(o interface{ IsOccupied(board.Point) bool }, points []board.Point) bool {
	seen := make(map[board.Point]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			return true
		}
		seen[p] = struct{}{}
		if o.IsOccupied(p) {
			return true
		}
	}
	return false
}
