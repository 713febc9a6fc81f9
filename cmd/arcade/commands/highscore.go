package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/battlesnakeio/arcade/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const storeTimeout = 5 * time.Second

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "prints the persisted high score",
	Run: func(c *cobra.Command, args []string) {
		s, closeStore := mustOpenStore()
		defer closeStore()

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		high, err := s.GetHighScore(ctx)
		if err != nil && err != store.ErrNotFound {
			log.WithError(err).Fatal("unable to read high score")
		}
		fmt.Fprintln(c.OutOrStdout(), high)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "clears the persisted high score",
	Run: func(c *cobra.Command, args []string) {
		s, closeStore := mustOpenStore()
		defer closeStore()

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := s.ClearHighScore(ctx); err != nil {
			log.WithError(err).Fatal("unable to clear high score")
		}
		log.Info("high score cleared")
	},
}
