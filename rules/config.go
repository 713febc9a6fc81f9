package rules

import (
	"errors"
	"time"
)

// ErrInvalidConfig is returned when the game constants cannot describe a
// playable board.
var ErrInvalidConfig = errors.New("rules: invalid game configuration")

// Config holds the constants a session is played with. Width, Height and
// SpaceSize are in pixels; everything the rules work with is derived in
// cells from them.
type Config struct {
	Width     int32
	Height    int32
	SpaceSize int32

	BodyParts     int
	BonusInterval int
	FoodPoints    int
	BonusPoints   int

	WallLength       int
	WallAttempts     int
	ObstacleAttempts int
	// SpawnMargin keeps obstacles and walls this many cells away from the
	// edges of the grid.
	SpawnMargin int32

	// WallThresholds are the ascending scores at which a new wall is built.
	WallThresholds []int

	TickInterval     time.Duration
	ObstacleInterval time.Duration
	ThoughtInterval  time.Duration
}

// DefaultConfig returns the classic 40x30 board.
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		SpaceSize:        20,
		BodyParts:        3,
		BonusInterval:    10,
		FoodPoints:       1,
		BonusPoints:      2,
		WallLength:       8,
		WallAttempts:     30,
		ObstacleAttempts: 20,
		SpawnMargin:      2,
		WallThresholds:   []int{40, 60, 80, 100, 120},
		TickInterval:     100 * time.Millisecond,
		ObstacleInterval: 10 * time.Second,
		ThoughtInterval:  3 * time.Second,
	}
}

// Grid builds the grid described by the config.
func (c Config) Grid() (Grid, error) {
	return NewGrid(c.Width, c.Height, c.SpaceSize)
}

// Validate checks the config can be played. Grid errors are returned as
// ErrInvalidGrid, everything else as ErrInvalidConfig.
func (c Config) Validate() error {
	g, err := c.Grid()
	if err != nil {
		return err
	}
	if c.BodyParts < 1 || int32(c.BodyParts) > g.Cols() {
		return ErrInvalidConfig
	}
	if c.BonusInterval < 1 || c.FoodPoints < 0 || c.BonusPoints < 0 {
		return ErrInvalidConfig
	}
	if c.WallLength < 1 || c.WallAttempts < 1 || c.ObstacleAttempts < 1 || c.SpawnMargin < 0 {
		return ErrInvalidConfig
	}
	if c.TickInterval <= 0 {
		return ErrInvalidConfig
	}
	for i := 1; i < len(c.WallThresholds); i++ {
		if c.WallThresholds[i] < c.WallThresholds[i-1] {
			return ErrInvalidConfig
		}
	}
	return nil
}
