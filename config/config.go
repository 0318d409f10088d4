// Package config holds the knobs for a game session. Values are filled from
// command line flags; there are no environment variables or config files.
package config

import (
	"time"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Backends understood by terminal.NewScreen.
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// Defaults of the classic game.
const (
	DefaultWidth        = 10
	DefaultHeight       = 10
	DefaultMaxLength    = 3
	DefaultTickInterval = 500 * time.Millisecond
)

// ErrInvalid is the cause of every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config describes a single game session.
type Config struct {
	Width     int
	Height    int
	MaxLength int
	// TickInterval is the fixed delay between two engine steps.
	TickInterval time.Duration
	// InclusiveBounds lets the head move one cell past the right and bottom
	// edges of the grid.
	InclusiveBounds bool
	// GrowOnEat raises the snake's length cap whenever the head lands on food.
	GrowOnEat bool
	// Seed for food placement, 0 means time based.
	Seed    int64
	Backend string
	// Numeric draws the board as the 0/1/2 grid instead of the boxed view.
	Numeric bool
}

// Default returns the configuration of the classic 10x10 game.
func Default() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MaxLength:    DefaultMaxLength,
		TickInterval: DefaultTickInterval,
		Backend:      BackendTermbox,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(ErrInvalid, "board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.MaxLength < 1 {
		return errors.Wrapf(ErrInvalid, "max length must be at least 1, got %d", c.MaxLength)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalid, "tick interval must be positive, got %v", c.TickInterval)
	}
	switch c.Backend {
	case BackendTermbox, BackendTcell:
	default:
		return errors.Wrapf(ErrInvalid, "unknown backend %q", c.Backend)
	}
	return nil
}

// Bounds returns the movement clamp for this configuration.
func (c Config) Bounds() game.Bounds {
	if c.InclusiveBounds {
		return game.Inclusive
	}
	return game.Exclusive
}

// Limit is the tick rate.
func (c Config) Limit() rate.Limit {
	return rate.Every(c.TickInterval)
}

// SeedOrNow returns Seed, or the current time when no seed was given.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
