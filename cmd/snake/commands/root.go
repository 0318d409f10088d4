package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:           "snake",
	Short:         "snake is a terminal snake game",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	logLevel = "info"
	logFile  string
	debug    bool
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", debug, "dump the game state every tick, implies --log-level debug")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Fprintln(c.OutOrStdout(), version.Version)
	},
}

// configureLogging points logrus at --log-file, or at fallback when no file was
// given. The returned func closes the file.
func configureLogging(fallback io.Writer) (func(), error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --log-level")
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return func() {
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "error while closing log file:", err)
		}
	}, nil
}

// boardFlags registers the flags shared by every command that runs a game.
func boardFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.IntVar(&cfg.Width, "width", cfg.Width, "board width")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "board height")
	flags.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "snake length, head included")
	flags.BoolVar(&cfg.InclusiveBounds, "inclusive-bounds", cfg.InclusiveBounds, "let the head move one cell past the right and bottom edges")
	flags.BoolVar(&cfg.GrowOnEat, "grow", cfg.GrowOnEat, "grow the snake when it eats")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 picks one from the clock")
}
