package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/sound"
	"github.com/battlesnakeio/arcade/store"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const waitFor = 2 * time.Second

type frameLog struct {
	sync.Mutex
	frames []*board.Frame
	err    error
}

func (l *frameLog) add(f *board.Frame) error {
	l.Lock()
	defer l.Unlock()
	l.frames = append(l.frames, f)
	return l.err
}

func (l *frameLog) Render(f *board.Frame) error { return l.add(f) }
func (l *frameLog) Record(f *board.Frame) error { return l.add(f) }

func (l *frameLog) last() *board.Frame {
	l.Lock()
	defer l.Unlock()
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[len(l.frames)-1]
}

func (l *frameLog) count() int {
	l.Lock()
	defer l.Unlock()
	return len(l.frames)
}

type cueLog struct {
	sync.Mutex
	cues []sound.Cue
}

func (l *cueLog) Play(c sound.Cue) {
	l.Lock()
	defer l.Unlock()
	l.cues = append(l.cues, c)
}

func (l *cueLog) played(c sound.Cue) bool {
	l.Lock()
	defer l.Unlock()
	for _, p := range l.cues {
		if p == c {
			return true
		}
	}
	return false
}

func testConfig(tick time.Duration) rules.Config {
	cfg := rules.DefaultConfig()
	cfg.TickInterval = tick
	cfg.ObstacleInterval = time.Hour
	cfg.ThoughtInterval = time.Hour
	return cfg
}

func newTestSession(t *testing.T, cfg rules.Config, st store.Store) *rules.Session {
	s, err := rules.NewSession(cfg, rules.NewScoreboard(context.Background(), st), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s
}

// runWorker starts w in the background and returns the command channel and
// a function that stops the worker and returns its error.
func runWorker(t *testing.T, w *Worker) (chan<- Command, func() error) {
	ctx, cancel := context.WithCancel(context.Background())
	commands := make(chan Command)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, commands) }()

	var once sync.Once
	var err error
	stop := func() error {
		once.Do(func() {
			cancel()
			err = <-done
		})
		return err
	}
	t.Cleanup(func() { _ = stop() })
	return commands, stop
}

func lastStatus(l *frameLog) string {
	if f := l.last(); f != nil {
		return f.Status
	}
	return ""
}

func TestWorkerQuit(t *testing.T) {
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(time.Hour), nil), Renderer: renderer}

	commands := make(chan Command)
	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background(), commands) }()

	commands <- CommandQuit
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("worker did not quit")
	}
	require.Equal(t, string(rules.StatusNotStarted), renderer.last().Status)
}

func TestWorkerClosedCommands(t *testing.T) {
	w := &Worker{Session: newTestSession(t, testConfig(time.Hour), nil), Renderer: &frameLog{}}
	commands := make(chan Command)
	close(commands)
	require.NoError(t, w.Run(context.Background(), commands))
}

func TestWorkerContextCancel(t *testing.T) {
	w := &Worker{Session: newTestSession(t, testConfig(time.Hour), nil), Renderer: &frameLog{}}
	_, stop := runWorker(t, w)
	require.Equal(t, context.Canceled, stop())
}

func TestWorkerRunsToGameOver(t *testing.T) {
	renderer := &frameLog{}
	cues := &cueLog{}
	w := &Worker{
		Session:  newTestSession(t, testConfig(2*time.Millisecond), nil),
		Renderer: renderer,
		Sound:    cues,
	}
	ticksBefore := testutil.ToFloat64(ticksTotal)
	overBefore := testutil.ToFloat64(gamesOverTotal.WithLabelValues(rules.DeathCauseWallCollision))

	commands, stop := runWorker(t, w)
	commands <- CommandStart

	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusGameOver)
	}, waitFor, time.Millisecond)
	require.Equal(t, context.Canceled, stop())

	f := renderer.last()
	require.NotNil(t, f.Death, spew.Sdump(f))
	require.Equal(t, rules.DeathCauseWallCollision, f.Death.Cause)
	require.Equal(t, int64(38), f.Turn, "head starts at x=2 and leaves a 40 column board on turn 38")
	require.True(t, cues.played(sound.CueGameOver))
	require.Equal(t, ticksBefore+38, testutil.ToFloat64(ticksTotal))
	require.Equal(t, overBefore+1, testutil.ToFloat64(gamesOverTotal.WithLabelValues(rules.DeathCauseWallCollision)))
}

func TestWorkerDirection(t *testing.T) {
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(5*time.Millisecond), nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandStart
	commands <- CommandDown

	require.Eventually(t, func() bool {
		f := renderer.last()
		return f.Head() != nil && f.Head().Y >= 1 && f.Heading == board.DirectionDown
	}, waitFor, time.Millisecond)
}

func TestWorkerPauseResume(t *testing.T) {
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(20*time.Millisecond), nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandStart
	require.Eventually(t, func() bool { return renderer.last().Turn >= 2 }, waitFor, time.Millisecond)

	commands <- CommandPause
	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusPaused)
	}, waitFor, time.Millisecond)
	paused := renderer.last().Turn

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, paused, renderer.last().Turn, "no ticks while paused")

	commands <- CommandPause
	require.Eventually(t, func() bool {
		f := renderer.last()
		return f.Status == string(rules.StatusRunning) && f.Turn > paused
	}, waitFor, time.Millisecond)
}

func TestWorkerIgnoresWrongStateCommands(t *testing.T) {
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(time.Hour), nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandPause
	commands <- CommandLeft
	commands <- Command("jump")
	commands <- CommandStart
	commands <- CommandStart

	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusRunning)
	}, waitFor, time.Millisecond)
	require.Equal(t, board.DirectionRight, renderer.last().Heading)
	require.Zero(t, renderer.last().Turn)
}

func TestWorkerReset(t *testing.T) {
	st := store.InMemStore()
	require.NoError(t, st.PutHighScore(context.Background(), 9))
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(time.Hour), st), Renderer: renderer}

	commands, _ := runWorker(t, w)
	require.Eventually(t, func() bool { return renderer.count() > 0 }, waitFor, time.Millisecond)
	require.Equal(t, 9, renderer.last().HighScore)

	commands <- CommandReset
	require.Eventually(t, func() bool {
		f := renderer.last()
		return f.Status == string(rules.StatusRunning) && f.HighScore == 0
	}, waitFor, time.Millisecond)

	_, err := st.GetHighScore(context.Background())
	require.Equal(t, store.ErrNotFound, err)
}

func TestWorkerRestartAfterGameOver(t *testing.T) {
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, testConfig(time.Millisecond), nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandStart
	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusGameOver)
	}, waitFor, time.Millisecond)
	first := renderer.last().SessionID

	commands <- CommandRestart
	require.Eventually(t, func() bool {
		f := renderer.last()
		return f.SessionID != first
	}, waitFor, time.Millisecond)
}

func TestWorkerPeriodicTimers(t *testing.T) {
	cfg := testConfig(time.Hour)
	cfg.ObstacleInterval = 5 * time.Millisecond
	cfg.ThoughtInterval = 5 * time.Millisecond
	renderer := &frameLog{}
	w := &Worker{Session: newTestSession(t, cfg, nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandStart

	require.Eventually(t, func() bool {
		f := renderer.last()
		return len(f.Obstacles) >= 3 && f.Thought != rules.Thoughts[0]
	}, waitFor, time.Millisecond)
}

func TestWorkerRecordsEveryFrame(t *testing.T) {
	renderer := &frameLog{}
	recorder := &frameLog{}
	w := &Worker{
		Session:     newTestSession(t, testConfig(time.Millisecond), nil),
		Renderer:    renderer,
		Recorder:    recorder,
		RenderLimit: rate.Limit(0.001),
		RenderBurst: 1,
	}

	commands, _ := runWorker(t, w)
	commands <- CommandStart
	require.Eventually(t, func() bool {
		return lastStatus(recorder) == string(rules.StatusGameOver)
	}, waitFor, time.Millisecond)

	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusGameOver)
	}, waitFor, time.Millisecond, "state changes are always rendered")
	require.True(t, renderer.count() < recorder.count(), "renderer %d, recorder %d", renderer.count(), recorder.count())
}

func TestWorkerSurvivesRenderErrors(t *testing.T) {
	renderer := &frameLog{err: errors.New("terminal gone")}
	w := &Worker{Session: newTestSession(t, testConfig(time.Millisecond), nil), Renderer: renderer}

	commands, _ := runWorker(t, w)
	commands <- CommandStart
	require.Eventually(t, func() bool {
		return lastStatus(renderer) == string(rules.StatusGameOver)
	}, waitFor, time.Millisecond)
}

func TestSchedule(t *testing.T) {
	s := schedule{}
	require.Nil(t, s.C())

	s.ensure(0)
	require.False(t, s.armed())

	s.ensure(time.Millisecond)
	require.True(t, s.armed())
	<-s.C()
	s.fired()
	require.False(t, s.armed())

	s.arm(time.Hour)
	s.stop()
	require.Nil(t, s.C())
}

func TestCommandDirection(t *testing.T) {
	d, ok := CommandLeft.Direction()
	require.True(t, ok)
	require.Equal(t, board.DirectionLeft, d)

	_, ok = CommandPause.Direction()
	require.False(t, ok)
}
