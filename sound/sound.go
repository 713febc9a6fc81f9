// Package sound plays short audio cues for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue is a game event with a sound attached.
type Cue int

const (
	// CueEat plays when the snake eats regular food
	CueEat Cue = iota
	// CueBonus plays when the snake eats bonus food
	CueBonus
	// CueWall plays when a wall is built
	CueWall
	// CueGameOver plays when the session ends
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueBonus:
		return "bonus"
	case CueWall:
		return "wall"
	case CueGameOver:
		return "game-over"
	}
	return "unknown"
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play implements Player.
func (Nop) Play(Cue) {}

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker initializes the audio device. Volume is linear, 1 is full.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements Player.
func (s *Speaker) Play(c Cue) {
	st := Streamer(c, sampleRate, s.volume)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}
