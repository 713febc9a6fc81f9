// Package redisstore keeps the high score in a single redis key.
package redisstore

import (
	"context"

	"github.com/battlesnakeio/arcade/store"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// DefaultKey is the redis key holding the high score.
const DefaultKey = "arcade:high_score"

// Store is a redis backed high score store.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client, key: DefaultKey}, nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

// GetHighScore reads the high score key.
func (rs *Store) GetHighScore(ctx context.Context) (int, error) {
	score, err := rs.client.WithContext(ctx).Get(rs.key).Int()
	if err == redis.Nil {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get high score")
	}
	if score < 0 {
		return 0, store.ErrNegativeScore
	}
	return score, nil
}

// PutHighScore overwrites the high score key, without expiry.
func (rs *Store) PutHighScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}
	err := rs.client.WithContext(ctx).Set(rs.key, score, 0).Err()
	return errors.Wrap(err, "unable to set high score")
}

// ClearHighScore deletes the high score key.
func (rs *Store) ClearHighScore(ctx context.Context) error {
	err := rs.client.WithContext(ctx).Del(rs.key).Err()
	return errors.Wrap(err, "unable to delete high score")
}
