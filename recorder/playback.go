package recorder

import "github.com/battlesnakeio/arcade/board"

// Playback walks the frames of a recording.
type Playback struct {
	frames []*board.Frame
	index  int
}

// NewPlayback starts at the first frame.
func NewPlayback(rec *Recording) *Playback {
	return &Playback{frames: rec.Frames}
}

// Current is the frame under the cursor, nil for a recording with no frames.
func (p *Playback) Current() *board.Frame {
	if p.index < 0 || p.index >= len(p.frames) {
		return nil
	}
	return p.frames[p.index]
}

// Forwards moves to the next frame. It reports true once the end is passed.
func (p *Playback) Forwards() (*board.Frame, bool) {
	p.index++
	if p.index >= len(p.frames) {
		p.index = len(p.frames)
		return nil, true
	}
	return p.frames[p.index], false
}

// Backwards moves to the previous frame, stopping at the first.
func (p *Playback) Backwards() *board.Frame {
	p.index--
	if p.index <= 0 {
		p.index = 0
	}
	return p.Current()
}

// Index is the position of the cursor.
func (p *Playback) Index() int { return p.index }

// Count is the number of frames.
func (p *Playback) Count() int { return len(p.frames) }
