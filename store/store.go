// Package store persists the single high score record that survives between
// runs of the game.
package store

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no high score has been recorded yet.
	ErrNotFound = errors.New("store: high score not found")
	// ErrNegativeScore is returned when a negative score is written.
	ErrNegativeScore = errors.New("store: high score must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	// GetHighScore returns the persisted high score, or ErrNotFound if the
	// record does not exist.
	GetHighScore(ctx context.Context) (int, error)
	// PutHighScore overwrites the record.
	PutHighScore(ctx context.Context, score int) error
	// ClearHighScore deletes the record. Clearing a missing record is not an
	// error.
	ClearHighScore(ctx context.Context) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{}
}

type inmem struct {
	score *int
	lock  sync.Mutex
}

func (in *inmem) GetHighScore(ctx context.Context) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if in.score == nil {
		return 0, ErrNotFound
	}
	return *in.score, nil
}

func (in *inmem) PutHighScore(ctx context.Context, score int) error {
	if score < 0 {
		return ErrNegativeScore
	}
	in.lock.Lock()
	defer in.lock.Unlock()

	in.score = &score
	return nil
}

func (in *inmem) ClearHighScore(ctx context.Context) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	in.score = nil
	return nil
}
