// Package worker runs a game session: it paces the ticks, feeds the latest
// input to the engine and hands every frame to a renderer.
package worker

import (
	"context"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/input"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Reason describes why a session ended.
type Reason string

// Possible end reasons.
const (
	ReasonExit      Reason = "exit"
	ReasonCancelled Reason = "cancelled"
	ReasonBoardFull Reason = "board full"
)

// Result summarizes a finished session.
type Result struct {
	Turns  int64
	Score  int
	Reason Reason
}

// DrawFunc receives every frame after a tick.
type DrawFunc func(rules.Frame) error

// Runner drives one game until the player exits, the context is cancelled or
// the board fills up.
type Runner struct {
	Engine rules.Stepper
	Input  *input.Latest
	Draw   DrawFunc
	// Limiter paces the ticks, one token per tick.
	Limiter *rate.Limiter
	Log     log.FieldLogger
	// Debug dumps every frame to the log.
	Debug bool
}

// Run loops until the session ends. A full board is returned as an error
// whose cause is game.ErrBoardFull, after its frame has been drawn.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	logger := r.Log
	if logger == nil {
		logger = log.StandardLogger()
	}

	for {
		if err := r.Limiter.Wait(ctx); err != nil {
			logger.WithError(err).Info("session cancelled")
			return r.result(ReasonCancelled), nil
		}

		// Exit is never fed to the engine.
		dir := r.Input.Load()
		if dir == game.Exit {
			logger.WithField("turn", r.Engine.Frame().Turn).Info("player exited")
			return r.result(ReasonExit), nil
		}

		stepErr := r.Engine.Step(dir)
		frame := r.Engine.Frame()
		if r.Debug {
			logger.Debug(spew.Sdump(frame))
		}
		if r.Draw != nil {
			if err := r.Draw(frame); err != nil {
				return r.result(ReasonCancelled), errors.Wrap(err, "worker: draw")
			}
		}

		if stepErr != nil {
			if rules.IsBoardFull(stepErr) {
				logger.WithFields(log.Fields{
					"turn":  frame.Turn,
					"score": frame.Score(),
				}).Warn("ending game, board is full")
				return r.result(ReasonBoardFull), stepErr
			}
			return r.result(ReasonCancelled), stepErr
		}
	}
}

func (r *Runner) result(reason Reason) Result {
	f := r.Engine.Frame()
	return Result{
		Turns:  f.Turn,
		Score:  f.Score(),
		Reason: reason,
	}
}
