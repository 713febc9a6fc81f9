package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

// note is a single frequency held for a fixed duration.
type note struct {
	freq     float64
	duration time.Duration
	wave     wave
}

var cues = map[Cue][]note{
	CueEat: {
		{freq: 880, duration: 60 * time.Millisecond, wave: waveSine},
	},
	CueBonus: {
		{freq: 987.77, duration: 70 * time.Millisecond, wave: waveSquare},
		{freq: 1318.51, duration: 120 * time.Millisecond, wave: waveSquare},
	},
	CueWall: {
		{freq: 110, duration: 150 * time.Millisecond, wave: waveSaw},
	},
	CueGameOver: {
		{freq: 440, duration: 150 * time.Millisecond, wave: waveSine},
		{freq: 330, duration: 150 * time.Millisecond, wave: waveSine},
		{freq: 220, duration: 300 * time.Millisecond, wave: waveSine},
	},
}

// Duration is how long the cue plays for.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.duration
	}
	return d
}

// Streamer builds the samples for a cue at the given rate and volume. It
// returns nil for unknown cues.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cues[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// tone generates a fading wave for one note.
type tone struct {
	note
	phase    float64
	position int
	samples  int
	rate     beep.SampleRate
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{note: n, samples: rate.N(n.duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.samples {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			val = -1
			if t.phase < 0.5 {
				val = 1
			}
		case waveSaw:
			val = 2 * (t.phase - 0.5)
		}
		// linear release to avoid a click at the end
		val *= 1 - float64(t.position)/float64(t.samples)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// newVolume wraps s in a volume effect. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
