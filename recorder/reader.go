package recorder

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/battlesnakeio/arcade/board"
	"github.com/pkg/errors"
)

// ErrEmptyRecording is returned when a recording has no header line.
var ErrEmptyRecording = errors.New("recorder: recording is empty")

// Recording is a fully loaded recording.
type Recording struct {
	Header Header
	Frames []*board.Frame
}

func readLine(r *bufio.Reader, out interface{}) (bool, error) {
	line, err := r.ReadBytes('\n')
	eof := err == io.EOF
	if err != nil && !eof {
		return false, err
	}

	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return false, io.EOF
	}
	if err = json.Unmarshal(line, out); err != nil {
		return false, err
	}
	return !eof, nil
}

// Read loads a whole recording.
func Read(r io.Reader) (*Recording, error) {
	reader := bufio.NewReader(r)

	rec := &Recording{}
	more, err := readLine(reader, &rec.Header)
	if err == io.EOF {
		return nil, ErrEmptyRecording
	}
	if err != nil {
		return nil, errors.Wrap(err, "invalid recording header")
	}

	for more {
		f := &board.Frame{}
		more, err = readLine(reader, f)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "invalid frame %d", len(rec.Frames))
		}
		rec.Frames = append(rec.Frames, f)
	}
	return rec, nil
}

// ReadFile loads the recording at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
