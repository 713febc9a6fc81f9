// Package config reads the tunables of the arcade from the environment. A
// .env file in the working directory is loaded before the first lookup.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

var loadDotEnv sync.Once

// Configuration variables. These aren't user facing but useful for tuning the
// board and the pace of the game.
var (
	GameWidth   = getEnvInt("SNAKE_GAME_WIDTH", 800)
	GameHeight  = getEnvInt("SNAKE_GAME_HEIGHT", 600)
	SpaceSize   = getEnvInt("SNAKE_SPACE_SIZE", 20)
	SpeedMS     = getEnvInt("SNAKE_SPEED_MS", 100)
	ObstacleMS  = getEnvInt("SNAKE_OBSTACLE_MS", 10000)
	ThoughtMS   = getEnvInt("SNAKE_THOUGHT_MS", 3000)
	RenderRate  = rate.Limit(getEnvInt("SNAKE_RENDER_FPS", 30))
	RenderBurst = getEnvInt("SNAKE_RENDER_BURST", 2)

	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 4)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 2)
)

// Game returns the default rules with the environment overrides applied.
func Game() rules.Config {
	cfg := rules.DefaultConfig()
	cfg.Width = int32(GameWidth)
	cfg.Height = int32(GameHeight)
	cfg.SpaceSize = int32(SpaceSize)
	cfg.TickInterval = time.Duration(SpeedMS) * time.Millisecond
	cfg.ObstacleInterval = time.Duration(ObstacleMS) * time.Millisecond
	cfg.ThoughtInterval = time.Duration(ThoughtMS) * time.Millisecond
	return cfg
}

func getEnvInt(varName string, defaults int) int {
	loadDotEnv.Do(func() {
		// a missing .env is the normal case
		_ = godotenv.Load()
	})

	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
