package rules

import (
	"context"

	"github.com/battlesnakeio/arcade/store"
	log "github.com/sirupsen/logrus"
)

// Scoreboard owns the score of the running session and the high score
// shared by every session of the process.
type Scoreboard struct {
	Score     int
	HighScore int

	// startHigh is the high score when the current session began, used to
	// tell a new record from an ordinary game over.
	startHigh int
	store     store.Store
}

// NewScoreboard loads the persisted high score. A missing record or a read
// failure both start from zero.
func NewScoreboard(ctx context.Context, s store.Store) *Scoreboard {
	if s == nil {
		s = store.InMemStore()
	}
	sb := &Scoreboard{store: s}

	high, err := s.GetHighScore(ctx)
	switch {
	case err == store.ErrNotFound:
	case err != nil:
		log.WithError(err).Warn("unable to load high score, starting from zero")
	default:
		sb.HighScore = high
	}
	sb.startHigh = sb.HighScore
	return sb
}

// Begin zeroes the score for a new session.
func (sb *Scoreboard) Begin() {
	sb.Score = 0
	sb.startHigh = sb.HighScore
}

// Add credits points to the score. When the score passes the high score the
// high score follows and is persisted; a failed write only loses the
// persisted copy.
func (sb *Scoreboard) Add(ctx context.Context, points int) bool {
	if points <= 0 {
		return false
	}
	sb.Score += points
	if sb.Score <= sb.HighScore {
		return false
	}
	sb.HighScore = sb.Score
	if err := sb.store.PutHighScore(ctx, sb.HighScore); err != nil {
		log.WithError(err).
			WithField("high_score", sb.HighScore).
			Warn("unable to persist high score")
	}
	return true
}

// IsNewRecord reports whether the current score beats the high score that
// stood when the session began.
func (sb *Scoreboard) IsNewRecord() bool {
	return sb.Score > sb.startHigh
}

// Reset clears the persisted high score and zeroes the in-memory one.
func (sb *Scoreboard) Reset(ctx context.Context) {
	if err := sb.store.ClearHighScore(ctx); err != nil {
		log.WithError(err).Warn("unable to clear high score")
	}
	sb.HighScore = 0
	sb.startHigh = 0
}
