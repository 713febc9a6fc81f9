// Package sqlstore keeps the high score in a one row SQL table. Postgres and
// sqlite databases are supported.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/store"
	_ "github.com/lib/pq"           // Import pq driver.
	_ "github.com/mattn/go-sqlite3" // Import sqlite3 driver.
	"github.com/pkg/errors"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	id INTEGER PRIMARY KEY,
	high_score INTEGER NOT NULL
);
`

const recordID = 1

// Store represents an SQL store.
type Store struct {
	db     *sql.DB
	driver string
}

// driverFor maps a store URL onto a database/sql driver name and DSN.
// postgres:// and postgresql:// go to lib/pq, sqlite3:// and file: go to
// go-sqlite3.
func driverFor(url string) (string, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres", url, nil
	case strings.HasPrefix(url, "sqlite3://"):
		return "sqlite3", strings.TrimPrefix(url, "sqlite3://"), nil
	case strings.HasPrefix(url, "file:"):
		return "sqlite3", url, nil
	}
	return "", "", fmt.Errorf("sqlstore: unsupported database url %q", url)
}

// NewSQLStore returns a new store for the database at url, creating the table
// when needed.
func NewSQLStore(url string) (*Store, error) {
	driver, dsn, err := driverFor(url)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to reach database")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate database")
	}
	return &Store{db: db, driver: driver}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders into $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetHighScore reads the single high score row.
func (s *Store) GetHighScore(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT high_score FROM high_scores WHERE id = ?`), recordID,
	).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to select high score")
	}
	return score, nil
}

// PutHighScore upserts the single high score row.
func (s *Store) PutHighScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO high_scores (id, high_score) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET high_score = excluded.high_score
	`), recordID, score)
	return errors.Wrap(err, "unable to upsert high score")
}

// ClearHighScore deletes the high score row.
func (s *Store) ClearHighScore(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`DELETE FROM high_scores WHERE id = ?`), recordID,
	)
	return errors.Wrap(err, "unable to delete high score")
}
