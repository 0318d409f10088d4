package terminal

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

var termboxColors = map[Color]termbox.Attribute{
	ColorDefault: termbox.ColorDefault,
	ColorGreen:   termbox.ColorGreen,
	ColorRed:     termbox.ColorRed,
	ColorYellow:  termbox.ColorYellow,
}

// termboxScreen switches the terminal to raw mode and the alternate screen on
// Init and restores it on Close.
type termboxScreen struct{}

func (termboxScreen) Init() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "terminal: termbox init")
	}
	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

func (termboxScreen) Close() { termbox.Close() }

func (termboxScreen) Size() (int, int) { return termbox.Size() }

func (termboxScreen) Clear() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg Color) {
	termbox.SetCell(x, y, ch, termboxColors[fg], termboxColors[bg])
}

func (termboxScreen) Flush() error { return termbox.Flush() }

func (termboxScreen) PollKey() Key {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return Key{Code: KeyInterrupt}
		case termbox.EventError:
			return Key{Code: KeyError, Err: ev.Err}
		case termbox.EventKey:
			return termboxKey(ev)
		}
	}
}

func (termboxScreen) Interrupt() { termbox.Interrupt() }

func termboxKey(ev termbox.Event) Key {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return Key{Code: KeyUp}
	case termbox.KeyArrowDown:
		return Key{Code: KeyDown}
	case termbox.KeyArrowLeft:
		return Key{Code: KeyLeft}
	case termbox.KeyArrowRight:
		return Key{Code: KeyRight}
	case termbox.KeyEsc:
		return Key{Code: KeyEsc}
	case termbox.KeyCtrlC:
		return Key{Code: KeyCtrlC}
	}
	if ev.Ch != 0 {
		return Key{Code: KeyRune, Rune: ev.Ch}
	}
	return Key{Code: KeyOther}
}
