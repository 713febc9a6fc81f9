// Package recorder writes sessions to disk one frame per line and reads them
// back for replay.
package recorder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/version"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// Header is the first line of every recording.
type Header struct {
	ID      string    `json:"id"`
	Version string    `json:"version"`
	Width   int32     `json:"width"`
	Height  int32     `json:"height"`
	Created time.Time `json:"created"`
}

// Recorder appends frames to a recording. Consecutive identical frames are
// written once.
type Recorder struct {
	mu     sync.Mutex
	w      writer
	header *Header
	last   *board.Frame
	frames int
}

// Create opens a new recording at path. It fails if the file exists.
func Create(path string) (*Recorder, error) {
	w, err := openFileWriter(path, true)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create recording")
	}
	return newRecorder(w), nil
}

func newRecorder(w writer) *Recorder {
	return &Recorder{w: w}
}

// Record implements the frame sink of the worker.
func (r *Recorder) Record(f *board.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.header == nil {
		r.header = &Header{
			ID:      uuid.NewV4().String(),
			Version: version.Version,
			Width:   f.Width,
			Height:  f.Height,
			Created: time.Now().UTC(),
		}
		if err := writeLine(r.w, r.header); err != nil {
			return err
		}
	}
	if r.last != nil && reflect.DeepEqual(r.last, f) {
		return nil
	}
	if err := writeLine(r.w, f); err != nil {
		return err
	}
	r.last = f
	r.frames++
	return nil
}

// Frames is the number of frames written so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close closes the underlying file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Close()
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return errors.Wrap(err, "unable to write recording")
}

func appendOnlyFileWriter(path string, mustCreate bool) (writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		return nil, err
	}

	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if mustCreate {
		flags |= os.O_EXCL
	}
	return os.OpenFile(path, flags, 0644)
}
