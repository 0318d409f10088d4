package terminal

import (
	"context"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/input"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MapKey translates a key press into a game input. Arrow keys steer; q, Esc
// and Ctrl-C exit. Everything else is ignored.
func MapKey(k Key) (game.Direction, bool) {
	switch k.Code {
	case KeyUp:
		return game.Up, true
	case KeyDown:
		return game.Down, true
	case KeyLeft:
		return game.Left, true
	case KeyRight:
		return game.Right, true
	case KeyEsc, KeyCtrlC:
		return game.Exit, true
	case KeyRune:
		if k.Rune == 'q' || k.Rune == 'Q' {
			return game.Exit, true
		}
	}
	return game.Exit, false
}

// Capture reads the keyboard and publishes every mapped key to latest until
// Exit is pressed or ctx is done.
func Capture(ctx context.Context, screen Screen, latest *input.Latest) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.Interrupt()
		case <-done:
		}
	}()

	for {
		key := screen.PollKey()
		switch key.Code {
		case KeyInterrupt:
			return ctx.Err()
		case KeyError:
			return errors.Wrap(key.Err, "terminal: reading keyboard")
		}

		dir, ok := MapKey(key)
		if !ok {
			continue
		}
		log.WithField("input", dir).Debug("key pressed")
		latest.Publish(dir)
		if dir == game.Exit {
			return nil
		}
	}
}
