package rules

import (
	"github.com/battlesnakeio/arcade/board"
	uuid "github.com/satori/go.uuid"
)

// initialize lays out a new game: the snake along the top row heading right,
// one seeded obstacle, the wall thresholds and the first food.
func (s *Session) initialize() {
	s.ID = uuid.NewV4().String()
	s.Status = StatusRunning
	s.Turn = 0
	s.ThoughtIndex = 0
	s.Death = nil
	s.NewRecord = false
	s.Scores.Begin()

	s.Heading = board.DirectionRight
	s.pending = ""
	s.Snake = board.NewSnake(
		board.Point{X: int32(s.Config.BodyParts - 1), Y: 0},
		board.DirectionRight,
		s.Config.BodyParts,
	)

	s.Food = nil
	s.Bonus = nil
	s.Obstacles = board.NewPointSet()
	s.Walls = board.NewPointSet()
	if p, ok := s.placer.PlaceObstacle(s, s.Config.SpawnMargin, s.Config.ObstacleAttempts); ok {
		s.Obstacles.Add(p)
	}

	s.WallThresholds = append([]int(nil), s.Config.WallThresholds...)

	if p, ok := s.placer.PlaceCell(s); ok {
		s.Food = &p
	}
}
