package commands

import (
	"context"
	"errors"
	"time"

	"github.com/battlesnakeio/arcade/recorder"
	"github.com/battlesnakeio/arcade/ui"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replaySpeed = 100 * time.Millisecond

func init() {
	replayCmd.Flags().DurationVar(&replaySpeed, "speed", replaySpeed, "delay between frames")
}

var replayCmd = &cobra.Command{
	Use:   "replay <recording>",
	Short: "replays a recorded session, space pauses, arrows step, esc exits",
	Args: func(c *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("a recording file is required")
		}
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		rec, err := recorder.ReadFile(args[0])
		if err != nil {
			log.WithError(err).WithField("path", args[0]).Fatal("unable to load recording")
		}
		if len(rec.Frames) == 0 {
			log.WithField("path", args[0]).Fatal("recording has no frames")
		}

		term, err := ui.OpenTermbox()
		if err != nil {
			log.WithError(err).Fatal("unable to open terminal")
		}
		defer term.Close()
		quietTerminal()

		if err := replay(term, recorder.NewPlayback(rec)); err != nil {
			log.WithError(err).Error("replay failed")
		}
	},
}

func replay(term *ui.Termbox, frames *recorder.Playback) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventQueue := term.Events(ctx)
	if err := term.Render(frames.Current()); err != nil {
		return err
	}

	cycle := time.NewTicker(replaySpeed)
	defer cycle.Stop()
	paused := false

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				if err := term.Render(frames.Backwards()); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				f, done := frames.Forwards()
				if done {
					return waitForKey(eventQueue)
				}
				if err := term.Render(f); err != nil {
					return err
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			f, done := frames.Forwards()
			if done {
				return waitForKey(eventQueue)
			}
			if err := term.Render(f); err != nil {
				return err
			}
		}
	}
}

func waitForKey(eventQueue <-chan termbox.Event) error {
	_, h := termbox.Size()
	msg := "Press any key to exit..."
	for i, c := range msg {
		termbox.SetCell(i, h-1, c, termbox.ColorDefault, termbox.ColorDefault)
	}
	if err := termbox.Flush(); err != nil {
		return err
	}
	for ev := range eventQueue {
		if ev.Type == termbox.EventKey {
			return nil
		}
	}
	return nil
}
