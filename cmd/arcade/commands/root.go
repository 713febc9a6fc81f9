package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:              "arcade",
	Short:            "arcade plays snake in the terminal",
	Version:          version.Version,
	PersistentPreRun: func(c *cobra.Command, args []string) { setupLogging() },
	PreRun:           func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&storeBackend, "store", "b", storeBackend, "high score store, as one of: [inmem, file, redis, sql]")
	rootCmd.PersistentFlags().StringVarP(&storeArgs, "store-args", "a", storeArgs, "options to pass to the store being used")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "file to write logs to, logs are discarded while a terminal ui is active if unset")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(highScoreCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
