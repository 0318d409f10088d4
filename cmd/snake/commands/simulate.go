package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/input"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/worker"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	simCfg      = config.Default()
	simMoves    string
	simRealtime bool
)

func init() {
	boardFlags(simulateCmd.Flags(), &simCfg)
	simulateCmd.Flags().StringVarP(&simMoves, "moves", "m", "", "comma separated moves, e.g. r,r,d or right,right,down")
	simulateCmd.Flags().BoolVar(&simRealtime, "realtime", simRealtime, "wait --tick between moves instead of running as fast as possible")
	simulateCmd.Flags().DurationVar(&simCfg.TickInterval, "tick", simCfg.TickInterval, "time between two moves with --realtime")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "run a scripted game without a terminal and print every board",
	Args: func(c *cobra.Command, args []string) error {
		if len(simMoves) == 0 {
			return errors.New("moves are required")
		}
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		if err := simCfg.Validate(); err != nil {
			return err
		}
		closeLog, err := configureLogging(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		moves, err := parseMoves(simMoves)
		if err != nil {
			return err
		}
		res, err := simulate(context.Background(), simCfg, moves, c.OutOrStdout())
		fmt.Fprintf(c.OutOrStdout(), "Game over (%s) after %d turns. Score: %d\n", res.Reason, res.Turns, res.Score)
		return err
	},
}

func parseMoves(s string) ([]game.Direction, error) {
	moves := []game.Direction{}
	for _, m := range strings.Split(s, ",") {
		if strings.TrimSpace(m) == "" {
			continue
		}
		d, err := game.ParseDirection(m)
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// simulate plays the moves in order, one per tick, and stops after the last
// one. Every frame is written to out.
func simulate(ctx context.Context, cfg config.Config, moves []game.Direction, out io.Writer) (worker.Result, error) {
	logger := log.WithField("session", uuid.NewV4().String())

	limit := rate.Inf
	if simRealtime {
		limit = cfg.Limit()
	}

	first := game.Exit
	if len(moves) > 0 {
		first = moves[0]
	}
	latest := input.NewLatest(first)
	next := 1

	runner := &worker.Runner{
		Engine: rules.New(cfg, rules.WithLogger(logger)),
		Input:  latest,
		Draw: func(frame rules.Frame) error {
			if err := terminal.WriteFrame(out, frame); err != nil {
				return err
			}
			if next < len(moves) {
				latest.Publish(moves[next])
				next++
			} else {
				latest.Publish(game.Exit)
			}
			return nil
		},
		Limiter: rate.NewLimiter(limit, 1),
		Log:     logger,
		Debug:   debug,
	}
	return runner.Run(ctx)
}
