package rules

import (
	"context"
	"math/rand"

	"github.com/battlesnakeio/arcade/board"
	log "github.com/sirupsen/logrus"
)

// Session is the whole mutable state of one game. It is owned by a single
// goroutine; nothing in it is safe for concurrent use.
type Session struct {
	ID     string
	Config Config
	Grid   Grid
	Status Status

	// Heading is the direction used by the last advance.
	Heading board.Direction
	// pending is the accepted direction for the next advance, if any.
	pending board.Direction

	Snake     *board.Snake
	Food      *board.Point
	Bonus     *board.Point
	Obstacles *board.PointSet
	// Walls is the subset of Obstacles contributed by walls, kept only so
	// renderers can tell the two apart.
	Walls *board.PointSet

	WallThresholds []int
	Turn           int64
	ThoughtIndex   int

	Death     *board.Death
	NewRecord bool

	Scores *Scoreboard
	placer Placer
}

// NewSession validates cfg and returns a session that has not been started.
func NewSession(cfg Config, scores *Scoreboard, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = NewScoreboard(context.Background(), nil)
	}
	return &Session{
		Config:    cfg,
		Grid:      grid,
		Status:    StatusNotStarted,
		Heading:   board.DirectionRight,
		Obstacles: board.NewPointSet(),
		Walls:     board.NewPointSet(),
		Scores:    scores,
		placer:    Placer{Grid: grid, Rand: rng},
	}, nil
}

func (s *Session) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"session": s.ID,
		"turn":    s.Turn,
		"score":   s.Scores.Score,
	})
}

// Start begins a new game. It is valid before the first game and after a
// game over; restarting goes through the same path.
func (s *Session) Start() bool {
	if s.Status != StatusNotStarted && s.Status != StatusGameOver {
		return false
	}
	s.initialize()
	s.logger().Info("session started")
	return true
}

// ResetAll clears the persisted high score and starts a fresh game from any
// state.
func (s *Session) ResetAll(ctx context.Context) {
	s.Scores.Reset(ctx)
	s.initialize()
	s.logger().Info("high score cleared, session started")
}

// Pause suspends a running session without touching its state.
func (s *Session) Pause() bool {
	if s.Status != StatusRunning {
		return false
	}
	s.Status = StatusPaused
	s.logger().Info("session paused")
	return true
}

// Resume continues a paused session and immediately plays one tick.
func (s *Session) Resume(ctx context.Context) (Outcome, bool) {
	if s.Status != StatusPaused {
		return Outcome{}, false
	}
	s.Status = StatusRunning
	s.logger().Info("session resumed")
	return GameTick(ctx, s), true
}

// SpawnObstacle drops one extra obstacle on the board. It runs on its own
// schedule and gives up quietly when no free spot is found.
func (s *Session) SpawnObstacle() (board.Point, bool) {
	if s.Status != StatusRunning {
		return board.Point{}, false
	}
	p, ok := s.placer.PlaceObstacle(s, s.Config.SpawnMargin, s.Config.ObstacleAttempts)
	if !ok {
		s.logger().Debug("no room for obstacle")
		return board.Point{}, false
	}
	s.Obstacles.Add(p)
	s.logger().WithField("obstacle", p).Info("obstacle spawned")
	return p, true
}

// Frame snapshots the session for renderers and recorders.
func (s *Session) Frame() *board.Frame {
	f := &board.Frame{
		SessionID: s.ID,
		Turn:      s.Turn,
		Status:    string(s.Status),
		Width:     s.Grid.Cols(),
		Height:    s.Grid.Rows(),
		Heading:   s.Heading,
		Snake:     []board.Point{},
		Obstacles: s.Obstacles.Points(),
		Walls:     s.Walls.Points(),
		Score:     s.Scores.Score,
		HighScore: s.Scores.HighScore,
		Thought:   s.Thought(),
		NewRecord: s.NewRecord,
	}
	if s.Snake != nil {
		f.Snake = s.Snake.Clone().Body
	}
	if s.Food != nil {
		food := *s.Food
		f.Food = &food
	}
	if s.Bonus != nil {
		bonus := *s.Bonus
		f.Bonus = &bonus
	}
	if s.Death != nil {
		death := *s.Death
		f.Death = &death
	}
	return f
}
