// Package terminal draws the board and reads the keyboard. It hides the
// terminal library behind Screen so the game can run on termbox or tcell.
package terminal

import (
	"github.com/battlesnakeio/termsnake/config"
	"github.com/pkg/errors"
)

// Color is a backend independent cell color.
type Color int

// Colors used by the renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorRed
	ColorYellow
)

// KeyCode identifies a key press, or one of the synthetic events a Screen
// emits while polling.
type KeyCode int

// Key codes.
const (
	KeyOther KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEsc
	KeyCtrlC
	// KeyInterrupt is returned by PollKey after Interrupt was called.
	KeyInterrupt
	// KeyError is returned by PollKey when the terminal can't be read.
	KeyError
)

// Key is a single keyboard event.
type Key struct {
	Code KeyCode
	Rune rune
	Err  error
}

// Screen is a full-screen terminal.
type Screen interface {
	Init() error
	Close()
	Size() (width, height int)
	Clear() error
	SetCell(x, y int, ch rune, fg, bg Color)
	Flush() error
	// PollKey blocks until the next key press.
	PollKey() Key
	// Interrupt wakes up a blocked PollKey.
	Interrupt()
}

// NewScreen returns an uninitialized screen for the named backend.
func NewScreen(backend string) (Screen, error) {
	switch backend {
	case config.BackendTermbox:
		return &termboxScreen{}, nil
	case config.BackendTcell:
		return newTcellScreen()
	}
	return nil, errors.Errorf("terminal: unknown backend %q", backend)
}
