// Package filestore keeps the high score in a small JSON document on disk.
package filestore

import (
	"context"
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/arcade/store"
	"github.com/pkg/errors"
)

// DefaultFileName is the name of the high score file inside the save directory.
const DefaultFileName = "snake_high_score.json"

func defaultPath() string {
	return filepath.Join(homeDir(), ".battlesnake", DefaultFileName)
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

type record struct {
	HighScore int `json:"high_score"`
}

// NewFileStore returns a file based store implementation. An empty path uses
// ~/.battlesnake/snake_high_score.json.
func NewFileStore(path string) store.Store {
	if path == "" {
		path = defaultPath()
	}
	return &fileStore{path: path}
}

type fileStore struct {
	path string
	lock sync.Mutex
}

func (fs *fileStore) GetHighScore(ctx context.Context) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read high score file")
	}

	// A document without the field reads as zero.
	r := record{}
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, errors.Wrapf(err, "unable to decode high score file %s", fs.path)
	}
	if r.HighScore < 0 {
		return 0, store.ErrNegativeScore
	}
	return r.HighScore, nil
}

func (fs *fileStore) PutHighScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(fs.path), 0775); err != nil {
		return errors.Wrap(err, "unable to create save directory")
	}
	data, err := json.Marshal(&record{HighScore: score})
	if err != nil {
		return err
	}

	// Write next to the target and rename so a crash never leaves half a
	// document behind.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "unable to write high score file")
	}
	return errors.Wrap(os.Rename(tmp, fs.path), "unable to replace high score file")
}

func (fs *fileStore) ClearHighScore(ctx context.Context) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	err := os.Remove(fs.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to remove high score file")
	}
	return nil
}
