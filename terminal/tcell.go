package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var tcellColors = map[Color]tcell.Color{
	ColorDefault: tcell.ColorDefault,
	ColorGreen:   tcell.ColorGreen,
	ColorRed:     tcell.ColorRed,
	ColorYellow:  tcell.ColorYellow,
}

type tcellScreen struct {
	screen tcell.Screen
}

func newTcellScreen() (*tcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal: tcell screen")
	}
	return &tcellScreen{screen: s}, nil
}

func (t *tcellScreen) Init() error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "terminal: tcell init")
	}
	return nil
}

func (t *tcellScreen) Close() { t.screen.Fini() }

func (t *tcellScreen) Size() (int, int) { return t.screen.Size() }

func (t *tcellScreen) Clear() error {
	t.screen.Clear()
	return nil
}

func (t *tcellScreen) SetCell(x, y int, ch rune, fg, bg Color) {
	style := tcell.StyleDefault.Foreground(tcellColors[fg]).Background(tcellColors[bg])
	t.screen.SetContent(x, y, ch, nil, style)
}

func (t *tcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

func (t *tcellScreen) PollKey() Key {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen was finalized
			return Key{Code: KeyInterrupt}
		case *tcell.EventInterrupt:
			return Key{Code: KeyInterrupt}
		case *tcell.EventError:
			return Key{Code: KeyError, Err: ev}
		case *tcell.EventKey:
			return tcellKey(ev)
		}
	}
}

func (t *tcellScreen) Interrupt() {
	// a full queue already has an event that will wake the reader
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func tcellKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Code: KeyUp}
	case tcell.KeyDown:
		return Key{Code: KeyDown}
	case tcell.KeyLeft:
		return Key{Code: KeyLeft}
	case tcell.KeyRight:
		return Key{Code: KeyRight}
	case tcell.KeyEscape:
		return Key{Code: KeyEsc}
	case tcell.KeyCtrlC:
		return Key{Code: KeyCtrlC}
	case tcell.KeyRune:
		return Key{Code: KeyRune, Rune: ev.Rune()}
	}
	return Key{Code: KeyOther}
}
