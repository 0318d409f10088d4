package terminal

import (
	"fmt"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/mattn/go-runewidth"
)

const (
	left = 2
	top  = 2

	foodRune = '●'
	headRune = '█'
	bodyRune = '▓'
)

// Renderer draws frames onto a Screen.
type Renderer struct {
	Screen Screen
	// Numeric prints the grid as rows of 0/1/2 instead of the boxed view.
	Numeric bool
	Session string
}

// Draw clears the screen and renders the frame followed by the status lines.
func (r *Renderer) Draw(frame rules.Frame) error {
	if err := r.Screen.Clear(); err != nil {
		return err
	}

	if r.Numeric {
		r.drawNumeric(frame)
	} else {
		r.drawBoxed(frame)
	}
	r.drawStatus(frame, r.statusTop(frame))

	return r.Screen.Flush()
}

// DrawMessage writes a single line under the board, e.g. when the game ends.
func (r *Renderer) DrawMessage(frame rules.Frame, msg string) error {
	printText(r.Screen, 0, r.statusTop(frame)+3, ColorYellow, ColorDefault, msg)
	return r.Screen.Flush()
}

func (r *Renderer) statusTop(frame rules.Frame) int {
	if r.Numeric {
		return frame.Height + 1
	}
	return top + frame.Height + 2
}

func (r *Renderer) drawNumeric(frame rules.Frame) {
	for y, row := range frame.Rows {
		for x, cell := range row {
			r.Screen.SetCell(x*2, y, rune('0'+cell), ColorDefault, ColorDefault)
		}
	}
}

func (r *Renderer) drawBoxed(frame rules.Frame) {
	width, height := frame.Width, frame.Height
	bottom := top + height + 1

	for i := top + 1; i < bottom; i++ {
		r.Screen.SetCell(left-1, i, '│', ColorDefault, ColorDefault)
		r.Screen.SetCell(left+width, i, '│', ColorDefault, ColorDefault)
	}
	r.Screen.SetCell(left-1, top, '┌', ColorDefault, ColorDefault)
	r.Screen.SetCell(left-1, bottom, '└', ColorDefault, ColorDefault)
	r.Screen.SetCell(left+width, top, '┐', ColorDefault, ColorDefault)
	r.Screen.SetCell(left+width, bottom, '┘', ColorDefault, ColorDefault)
	for x := 0; x < width; x++ {
		r.Screen.SetCell(left+x, top, '─', ColorDefault, ColorDefault)
		r.Screen.SetCell(left+x, bottom, '─', ColorDefault, ColorDefault)
	}

	for y, row := range frame.Rows {
		for x, cell := range row {
			switch cell {
			case game.SnakeSegment:
				ch := bodyRune
				if frame.Head.Equal(game.Point{X: x, Y: y}) {
					ch = headRune
				}
				r.Screen.SetCell(left+x, top+1+y, ch, ColorGreen, ColorDefault)
			case game.Food:
				r.Screen.SetCell(left+x, top+1+y, foodRune, ColorRed, ColorDefault)
			}
		}
	}
}

func (r *Renderer) drawStatus(frame rules.Frame, y int) {
	printText(r.Screen, 0, y, ColorDefault, ColorDefault, fmt.Sprintf("Moving in direction: %s", frame.Input))
	printText(r.Screen, 0, y+1, ColorDefault, ColorDefault, fmt.Sprintf("Score: %d", frame.Score()))
	status := fmt.Sprintf("Turn %d", frame.Turn)
	if r.Session != "" {
		status = fmt.Sprintf("%s - session %s", status, r.Session)
	}
	printText(r.Screen, 0, y+2, ColorDefault, ColorDefault, status)
}

func printText(s Screen, x, y int, fg, bg Color, msg string) {
	for _, c := range msg {
		s.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
