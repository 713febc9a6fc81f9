// Package e2e drives complete sessions through the worker without a
// terminal.
package e2e

import (
	"context"
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/recorder"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/store"
	"github.com/battlesnakeio/arcade/ui"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/pkg/errors"
)

// game is a headless arcade process.
type game struct {
	commands chan worker.Command
	screen   *ui.Headless
	done     chan error
	cancel   context.CancelFunc
}

func startGame(cfg rules.Config, s store.Store, rec *recorder.Recorder, seed int64) (*game, error) {
	ctx, cancel := context.WithCancel(context.Background())
	session, err := rules.NewSession(cfg, rules.NewScoreboard(ctx, store.InstrumentStore(s)), rand.New(rand.NewSource(seed)))
	if err != nil {
		cancel()
		return nil, err
	}

	g := &game{
		commands: make(chan worker.Command),
		screen:   &ui.Headless{},
		done:     make(chan error, 1),
		cancel:   cancel,
	}
	w := &worker.Worker{Session: session, Renderer: g.screen}
	if rec != nil {
		w.Recorder = rec
	}
	go func() { g.done <- w.Run(ctx, g.commands) }()
	return g, nil
}

func (g *game) send(c worker.Command) {
	g.commands <- c
}

// waitFor polls the rendered frames until cond holds.
func (g *game) waitFor(timeout time.Duration, cond func(f *board.Frame) bool) (*board.Frame, error) {
	deadline := time.After(timeout)
	for {
		if f := g.screen.Last(); f != nil && cond(f) {
			return f, nil
		}
		select {
		case <-deadline:
			return g.screen.Last(), errors.New("timed out waiting for frame")
		case <-time.After(time.Millisecond):
		}
	}
}

func (g *game) waitForStatus(timeout time.Duration, status rules.Status) (*board.Frame, error) {
	return g.waitFor(timeout, func(f *board.Frame) bool {
		return f.Status == string(status)
	})
}

// quit stops the worker and returns its error.
func (g *game) quit() error {
	g.send(worker.CommandQuit)
	defer g.cancel()
	select {
	case err := <-g.done:
		return err
	case <-time.After(5 * time.Second):
		return errors.New("worker did not quit")
	}
}
