package ui

import (
	"sync"

	"github.com/battlesnakeio/arcade/board"
	log "github.com/sirupsen/logrus"
)

// Headless keeps the last frame instead of drawing it. It is used when no
// terminal is attached.
type Headless struct {
	mu   sync.Mutex
	last *board.Frame
}

// Render implements worker.Renderer.
func (h *Headless) Render(f *board.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil || h.last.Status != f.Status {
		log.WithFields(log.Fields{
			"session": f.SessionID,
			"status":  f.Status,
			"score":   f.Score,
		}).Info(StatusLine(f))
	}
	h.last = f
	return nil
}

// Last is the most recent frame, nil before the first.
func (h *Headless) Last() *board.Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}
