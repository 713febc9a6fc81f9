package rules

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/board"
	log "github.com/sirupsen/logrus"
)

// Consumption is what the head landed on during a tick.
type Consumption int

const (
	// ConsumedNothing means the snake moved without eating
	ConsumedNothing Consumption = iota
	// ConsumedFood means the snake ate the regular food
	ConsumedFood
	// ConsumedBonus means the snake ate the bonus food
	ConsumedBonus
)

func (c Consumption) String() string {
	switch c {
	case ConsumedFood:
		return "food"
	case ConsumedBonus:
		return "bonus"
	}
	return "nothing"
}

// Outcome is what a tick decided. The scheduler owns the loop: it schedules
// the next tick after Delay when Continue is set and stops otherwise.
type Outcome struct {
	Continue bool
	Delay    time.Duration

	Consumed     Consumption
	NewHigh      bool
	Wall         *board.Wall
	// WallDeferred is set when a threshold was reached but no wall fit.
	WallDeferred bool
	Death        *board.Death
	NewRecord    bool
}

// GameTick runs the session one tick and updates the state. Ticks on a
// session that is not running do nothing and halt.
func GameTick(ctx context.Context, s *Session) Outcome {
	if s.Status != StatusRunning {
		return Outcome{}
	}
	s.Turn++
	out := Outcome{}

	// 1. move the head
	head := s.advance()
	s.logger().WithFields(log.Fields{
		"head":    head,
		"heading": s.Heading,
	}).Debug("advance")

	// 2. food, then bonus food, otherwise the tail follows
	out.Consumed = checkForConsumption(s, head)
	out.NewHigh = applyConsumption(ctx, s, out.Consumed)

	// 3. wall thresholds
	if s.wallDue() {
		if w, ok := s.tryPlaceWall(); ok {
			out.Wall = &w
		} else {
			out.WallDeferred = true
		}
	}

	// 4. check for death against the moved head
	if death := checkForDeath(s.Grid, s.Snake, s.Obstacles, s.Turn); death != nil {
		s.end(death)
		out.Death = death
		out.NewRecord = s.NewRecord
		return out
	}

	out.Continue = true
	out.Delay = s.Config.TickInterval
	return out
}

// checkForConsumption reports what the head landed on without changing
// anything.
func checkForConsumption(s *Session, head board.Point) Consumption {
	if s.Food != nil && s.Food.Equal(head) {
		return ConsumedFood
	}
	if s.Bonus != nil && s.Bonus.Equal(head) {
		return ConsumedBonus
	}
	return ConsumedNothing
}

// applyConsumption scores, respawns food and grows the snake. It reports
// whether the high score moved.
func applyConsumption(ctx context.Context, s *Session, c Consumption) bool {
	switch c {
	case ConsumedFood:
		newHigh := s.Scores.Add(ctx, s.Config.FoodPoints)
		s.Food = nil
		if p, ok := s.placer.PlaceCell(s); ok {
			s.Food = &p
		}
		score := s.Scores.Score
		if score > 0 && score%s.Config.BonusInterval == 0 && s.Bonus == nil {
			if p, ok := s.placer.PlaceCell(s); ok {
				s.Bonus = &p
				s.logger().WithField("bonus", p).Info("bonus food spawned")
			}
		}
		s.logger().Debug("snake ate")
		return newHigh
	case ConsumedBonus:
		newHigh := s.Scores.Add(ctx, s.Config.BonusPoints)
		s.Bonus = nil
		s.logger().Info("snake ate bonus food")
		return newHigh
	}
	s.Snake.DropTail()
	return false
}

// tryPlaceWall builds one wall when the score has reached the next
// threshold. The threshold is only consumed once the wall is committed.
func (s *Session) tryPlaceWall() (board.Wall, bool) {
	if !s.wallDue() {
		return board.Wall{}, false
	}
	w, ok := s.placer.PlaceWall(s, s.Config.WallLength, s.Config.SpawnMargin, s.Config.WallAttempts)
	if !ok {
		s.logger().WithField("threshold", s.WallThresholds[0]).Debug("no room for wall, retrying next tick")
		return board.Wall{}, false
	}
	s.Obstacles.Add(w.Cells...)
	s.Walls.Add(w.Cells...)
	s.WallThresholds = s.WallThresholds[1:]
	s.logger().WithField("origin", w.Origin).Info("wall placed")
	return w, true
}

func (s *Session) wallDue() bool {
	return len(s.WallThresholds) > 0 && s.Scores.Score >= s.WallThresholds[0]
}

func (s *Session) end(death *board.Death) {
	s.Status = StatusGameOver
	s.Death = death
	s.NewRecord = s.Scores.IsNewRecord()
	s.logger().WithFields(log.Fields{
		"cause":      death.Cause,
		"new_record": s.NewRecord,
	}).Info("game over")
}
