// Package worker runs a session. It is the scheduler of the arcade: a single
// goroutine owns the session and multiplexes the tick, obstacle and thought
// timers with the input commands.
package worker

import (
	"context"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/sound"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Renderer draws frames.
type Renderer interface {
	Render(f *board.Frame) error
}

// Recorder persists frames.
type Recorder interface {
	Record(f *board.Frame) error
}

// Worker drives a session from commands and timers. Renderer is required,
// Recorder and Sound are optional.
type Worker struct {
	Session  *rules.Session
	Renderer Renderer
	Recorder Recorder
	Sound    sound.Player

	// RenderLimit caps the render rate of frames that carry no state change.
	// Zero renders every frame.
	RenderLimit rate.Limit
	RenderBurst int

	limiter  *rate.Limiter
	tick     schedule
	obstacle schedule
	thought  schedule
}

// Run processes commands until ctx is done, the command channel closes or a
// quit command arrives. It returns ctx.Err() when cancelled and nil
// otherwise.
func (w *Worker) Run(ctx context.Context, commands <-chan Command) error {
	if w.Sound == nil {
		w.Sound = sound.Nop{}
	}
	limit, burst := w.RenderLimit, w.RenderBurst
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	w.limiter = rate.NewLimiter(limit, burst)
	defer w.stopAll()

	w.sync()
	w.publish(true)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-commands:
			if !ok || c == CommandQuit {
				log.WithField("session", w.Session.ID).Info("quitting")
				return nil
			}
			w.handle(ctx, c)
		case <-w.tick.C():
			w.tick.fired()
			w.step(rules.GameTick(ctx, w.Session))
		case <-w.obstacle.C():
			w.obstacle.fired()
			if _, ok := w.Session.SpawnObstacle(); !ok {
				placementFailuresTotal.WithLabelValues("obstacle").Inc()
			}
			w.publish(false)
		case <-w.thought.C():
			w.thought.fired()
			w.Session.RotateThought()
			w.publish(false)
		}
		w.sync()
	}
}

func (w *Worker) handle(ctx context.Context, c Command) {
	s := w.Session
	switch c {
	case CommandStart, CommandRestart:
		if !s.Start() {
			return
		}
		w.stopAll()
		scoreGauge.Set(0)
		w.publish(true)
	case CommandPause:
		switch s.Status {
		case rules.StatusRunning:
			s.Pause()
			w.stopAll()
			w.publish(true)
		case rules.StatusPaused:
			out, _ := s.Resume(ctx)
			w.step(out)
		}
	case CommandReset:
		w.stopAll()
		s.ResetAll(ctx)
		scoreGauge.Set(0)
		w.publish(true)
	default:
		d, ok := c.Direction()
		if !ok {
			log.WithField("command", c).Debug("unknown command")
			return
		}
		s.ChangeDirection(d)
	}
}

// step applies the side effects of a tick and schedules the next one.
func (w *Worker) step(out rules.Outcome) {
	ticksTotal.Inc()
	scoreGauge.Set(float64(w.Session.Scores.Score))

	switch out.Consumed {
	case rules.ConsumedFood:
		consumptionsTotal.WithLabelValues(out.Consumed.String()).Inc()
		w.Sound.Play(sound.CueEat)
	case rules.ConsumedBonus:
		consumptionsTotal.WithLabelValues(out.Consumed.String()).Inc()
		w.Sound.Play(sound.CueBonus)
	}
	if out.Wall != nil {
		w.Sound.Play(sound.CueWall)
	}
	if out.WallDeferred {
		placementFailuresTotal.WithLabelValues("wall").Inc()
	}

	if out.Death != nil {
		gamesOverTotal.WithLabelValues(out.Death.Cause).Inc()
		w.Sound.Play(sound.CueGameOver)
		w.stopAll()
		w.publish(true)
		return
	}
	if out.Continue {
		w.tick.arm(out.Delay)
	}
	w.publish(false)
}

// sync arms the timers of a running session and disarms everything else.
func (w *Worker) sync() {
	s := w.Session
	if s.Status != rules.StatusRunning {
		w.stopAll()
		return
	}
	w.tick.ensure(s.Config.TickInterval)
	w.obstacle.ensure(s.Config.ObstacleInterval)
	w.thought.ensure(s.Config.ThoughtInterval)
}

func (w *Worker) stopAll() {
	w.tick.stop()
	w.obstacle.stop()
	w.thought.stop()
}

// publish records the current frame and renders it. Forced frames bypass the
// render limit.
func (w *Worker) publish(force bool) {
	f := w.Session.Frame()
	if w.Recorder != nil {
		if err := w.Recorder.Record(f); err != nil {
			log.WithError(err).WithField("session", f.SessionID).Warn("unable to record frame")
		}
	}
	if !force && !w.limiter.Allow() {
		return
	}
	if err := w.Renderer.Render(f); err != nil {
		log.WithError(err).WithField("session", f.SessionID).Warn("unable to render frame")
	}
}
