package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/input"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/worker"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	playCfg    = config.Default()
	promEnable = false
	promListen = ":9000"
)

func init() {
	boardFlags(playCmd.Flags(), &playCfg)
	playCmd.Flags().DurationVar(&playCfg.TickInterval, "tick", playCfg.TickInterval, "time between two moves")
	playCmd.Flags().StringVar(&playCfg.Backend, "backend", playCfg.Backend, "terminal backend (termbox, tcell)")
	playCmd.Flags().BoolVar(&playCfg.Numeric, "numeric", playCfg.Numeric, "draw the board as a grid of numbers")
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal, steer with the arrow keys and quit with q",
	RunE: func(c *cobra.Command, args []string) error {
		if err := playCfg.Validate(); err != nil {
			return err
		}
		closeLog, err := configureLogging(io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		res, err := play(playCfg)
		if err != nil && !rules.IsBoardFull(err) {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Game over (%s) after %d turns. Score: %d\n", res.Reason, res.Turns, res.Score)
		return err
	},
}

func play(cfg config.Config) (worker.Result, error) {
	session := uuid.NewV4().String()
	logger := log.WithField("session", session)
	logger.WithFields(log.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"tick":   cfg.TickInterval,
	}).Info("starting game")

	if promEnable {
		prometheus(logger)
	}

	screen, err := terminal.NewScreen(cfg.Backend)
	if err != nil {
		return worker.Result{}, err
	}
	if err = screen.Init(); err != nil {
		return worker.Result{}, err
	}
	defer screen.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	latest := input.NewLatest(game.Right)
	captured := make(chan struct{})
	go func() {
		defer close(captured)
		if err := terminal.Capture(ctx, screen, latest); err != nil && err != context.Canceled {
			logger.WithError(err).Error("keyboard capture stopped")
			cancel()
		}
	}()

	engine := rules.New(cfg, rules.WithLogger(logger))
	renderer := &terminal.Renderer{
		Screen:  screen,
		Numeric: cfg.Numeric,
		Session: session[:8],
	}
	runner := &worker.Runner{
		Engine:  rules.Instrument(engine),
		Input:   latest,
		Draw:    renderer.Draw,
		Limiter: rate.NewLimiter(cfg.Limit(), 1),
		Log:     logger,
		Debug:   debug,
	}

	res, err := runner.Run(ctx)
	cancel()
	<-captured

	if rules.IsBoardFull(err) {
		if drawErr := renderer.DrawMessage(engine.Frame(), "Board full! Press any key to exit..."); drawErr != nil {
			logger.WithError(drawErr).Warn("unable to draw final message")
		}
		screen.PollKey()
	}

	logger.WithFields(log.Fields{
		"turns":  res.Turns,
		"score":  res.Score,
		"reason": res.Reason,
	}).Info("game over")
	return res, err
}
