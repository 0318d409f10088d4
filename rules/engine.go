// Package rules runs the game one tick at a time. The Engine is the only
// mutator of the snake and the board.
package rules

import (
	"math/rand"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/game"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StartPoint is where every snake begins, pulled onto the grid for boards
// smaller than 2x2.
var StartPoint = game.Point{X: 1, Y: 1}

// Stepper advances a game by one tick.
type Stepper interface {
	Step(game.Direction) error
	Frame() Frame
}

// Frame is a read-only snapshot of the game after a tick, handed to renderers.
type Frame struct {
	Turn      int64
	Input     game.Direction
	Width     int
	Height    int
	Head      game.Point
	History   []game.Point
	MaxLength int
	Food      game.Point
	HasFood   bool
	Rows      [][]game.Cell
}

// Score is the number of trailing segments.
func (f Frame) Score() int { return len(f.History) }

// Engine owns the snake and the board for one session.
type Engine struct {
	cfg   config.Config
	body  *game.Body
	board *game.Board
	rng   *rand.Rand
	log   log.FieldLogger
	turn  int64
	input game.Direction
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the logger every tick is reported to.
func WithLogger(l log.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine with an empty board and a fresh snake at StartPoint.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		board: game.NewBoard(cfg.Width, cfg.Height),
		log:   log.StandardLogger(),
		input: game.Right,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(cfg.SeedOrNow()))
	}
	e.body = game.NewBody(startPoint(cfg), cfg.MaxLength)
	return e
}

func startPoint(cfg config.Config) game.Point {
	maxX, maxY := cfg.Width-1, cfg.Height-1
	if cfg.Bounds() == game.Inclusive {
		maxX, maxY = cfg.Width, cfg.Height
	}
	p := StartPoint
	if p.X > maxX {
		p.X = maxX
	}
	if p.Y > maxY {
		p.Y = maxY
	}
	return p
}

// Step runs the game one tick: the snake advances, then the board is rebuilt
// from it. Exit is not interpreted here, callers stop before stepping with it.
// The only error is game.ErrBoardFull, wrapped with the turn it happened on.
func (e *Engine) Step(dir game.Direction) error {
	e.turn++
	e.input = dir
	e.body.Advance(e.cfg.Width, e.cfg.Height, dir, e.cfg.Bounds())

	if e.cfg.GrowOnEat {
		if food, ok := e.board.Food(); ok && e.body.Head.Equal(food) {
			e.body.Grow()
			e.log.WithFields(log.Fields{
				"turn":      e.turn,
				"food":      food,
				"maxLength": e.body.MaxLength,
			}).Info("snake ate")
		}
	}

	food, err := e.board.Rebuild(e.body, e.rng)
	if err != nil {
		e.log.WithFields(log.Fields{
			"turn": e.turn,
			"head": e.body.Head,
		}).WithError(err).Warn("no room left for food")
		return errors.Wrapf(err, "turn %d", e.turn)
	}

	e.log.WithFields(log.Fields{
		"turn":  e.turn,
		"input": dir,
		"head":  e.body.Head,
		"food":  food,
		"score": e.body.Score(),
	}).Debug("tick")
	return nil
}

// Body returns the snake. It must not be modified by the caller.
func (e *Engine) Body() *game.Body { return e.body }

// Board returns the current board. It must not be modified by the caller.
func (e *Engine) Board() *game.Board { return e.board }

// Turn is the number of completed steps.
func (e *Engine) Turn() int64 { return e.turn }

// Score is the length of the snake's history.
func (e *Engine) Score() int { return e.body.Score() }

// Frame snapshots the current state.
func (e *Engine) Frame() Frame {
	body := e.body.Clone()
	food, ok := e.board.Food()
	return Frame{
		Turn:      e.turn,
		Input:     e.input,
		Width:     e.board.Width(),
		Height:    e.board.Height(),
		Head:      body.Head,
		History:   body.History,
		MaxLength: body.MaxLength,
		Food:      food,
		HasFood:   ok,
		Rows:      e.board.Rows(),
	}
}

// IsBoardFull reports whether err was caused by running out of empty cells.
func IsBoardFull(err error) bool {
	return errors.Cause(err) == game.ErrBoardFull
}
