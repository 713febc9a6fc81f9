package commands

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/recorder"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/sound"
	"github.com/battlesnakeio/arcade/ui"
	"github.com/battlesnakeio/arcade/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	uiBackend   = "termbox"
	seed        int64
	soundEnable = false
	soundVolume = 0.5
	recordPath  = ""
)

func init() {
	playCmd.Flags().StringVar(&uiBackend, "ui", uiBackend, "user interface, as one of: [termbox, tcell, none]; none reads commands from stdin, one per line")
	playCmd.Flags().Int64Var(&seed, "seed", seed, "seed for the board layout, random if zero")
	playCmd.Flags().BoolVar(&soundEnable, "sound", soundEnable, "play sound cues")
	playCmd.Flags().Float64Var(&soundVolume, "volume", soundVolume, "sound volume between 0 and 1")
	playCmd.Flags().StringVarP(&recordPath, "record", "r", recordPath, "record every frame of the session to this file")
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

type terminal interface {
	worker.Renderer
	Commands(ctx context.Context) <-chan worker.Command
	Close() error
}

var playCmd = &cobra.Command{
	Use:    "play",
	Short:  "plays snake",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		s, closeStore := mustOpenStore()
		defer closeStore()

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		session, err := rules.NewSession(
			config.Game(),
			rules.NewScoreboard(ctx, s),
			rand.New(rand.NewSource(seed)),
		)
		if err != nil {
			log.WithError(err).Fatal("invalid game configuration")
		}

		w := &worker.Worker{
			Session:     session,
			RenderLimit: config.RenderRate,
			RenderBurst: config.RenderBurst,
		}

		if recordPath != "" {
			rec, err := recorder.Create(recordPath)
			if err != nil {
				log.WithError(err).WithField("path", recordPath).Fatal("unable to record session")
			}
			defer func() {
				if err := rec.Close(); err != nil {
					log.WithError(err).Error("unable to close recording")
				}
			}()
			w.Recorder = rec
		}

		if soundEnable {
			sp, err := sound.NewSpeaker(soundVolume)
			if err != nil {
				log.WithError(err).Warn("unable to open audio device, playing without sound")
			} else {
				defer sp.Close()
				w.Sound = sp
			}
		}

		var commands <-chan worker.Command
		switch uiBackend {
		case "none":
			w.Renderer = &ui.Headless{}
			commands = ui.LineCommands(ctx, os.Stdin)
		case "termbox", "tcell":
			term, err := openTerminal(uiBackend)
			if err != nil {
				log.WithError(err).WithField("ui", uiBackend).Fatal("unable to open terminal")
			}
			defer term.Close()
			quietTerminal()
			w.Renderer = term
			commands = term.Commands(ctx)
		default:
			log.WithField("ui", uiBackend).Fatal("invalid ui")
		}

		log.WithFields(log.Fields{
			"seed":  seed,
			"ui":    uiBackend,
			"store": storeBackend,
		}).Info("arcade starting")
		if err := w.Run(ctx, commands); err != nil && err != context.Canceled {
			log.WithError(err).Error("session ended unexpectedly")
		}
	},
}

func openTerminal(backend string) (terminal, error) {
	if backend == "tcell" {
		return ui.OpenTcell()
	}
	return ui.OpenTermbox()
}
