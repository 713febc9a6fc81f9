package sound

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) (int, [][2]float64) {
	var all [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			break
		}
		require.True(t, len(all) < 10*int(sampleRate), "streamer never ends")
	}
	require.NoError(t, s.Err())
	return len(all), all
}

func TestStreamerLength(t *testing.T) {
	for _, c := range []Cue{CueEat, CueBonus, CueWall, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			n, samples := drain(t, Streamer(c, sampleRate, 1))

			expected := 0
			for _, note := range cues[c] {
				expected += sampleRate.N(note.duration)
			}
			require.Equal(t, expected, n)
			require.Equal(t, sampleRate.N(Duration(c)), n)

			for i, s := range samples {
				require.True(t, s[0] >= -1 && s[0] <= 1, "sample %d out of range: %f", i, s[0])
				require.Equal(t, s[0], s[1])
			}
		})
	}
}

func TestStreamerSilent(t *testing.T) {
	_, samples := drain(t, Streamer(CueEat, sampleRate, 0))
	for _, s := range samples {
		require.Zero(t, s[0])
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	require.Nil(t, Streamer(Cue(42), sampleRate, 1))
	require.Zero(t, Duration(Cue(42)))
	require.Equal(t, "unknown", Cue(42).String())
}

func TestToneSquare(t *testing.T) {
	tn := newTone(note{freq: 220, duration: cues[CueBonus][0].duration, wave: waveSquare}, sampleRate)
	_, samples := drain(t, tn)
	require.Equal(t, 1.0, samples[0][0])
	for _, s := range samples {
		require.True(t, s[0] >= -1 && s[0] <= 1)
	}
}
