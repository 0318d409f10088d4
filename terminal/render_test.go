package terminal

import (
	"testing"

	"github.com/battlesnakeio/termsnake/game"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/stretchr/testify/require"
)

func testFrame() rules.Frame {
	return rules.Frame{
		Turn:    4,
		Input:   game.Down,
		Width:   3,
		Height:  2,
		Head:    game.Point{X: 1, Y: 1},
		History: []game.Point{{X: 1, Y: 0}},
		Food:    game.Point{X: 2, Y: 1},
		HasFood: true,
		Rows: [][]game.Cell{
			{game.Empty, game.SnakeSegment, game.Empty},
			{game.Empty, game.SnakeSegment, game.Food},
		},
	}
}

func TestRendererNumeric(t *testing.T) {
	s := newFakeScreen()
	r := &Renderer{Screen: s, Numeric: true, Session: "abc"}
	require.NoError(t, r.Draw(testFrame()))

	require.Equal(t, "0 1 0", s.line(0, 10))
	require.Equal(t, "0 1 2", s.line(1, 10))
	require.Equal(t, "Moving in direction: Down", s.line(3, 40))
	require.Equal(t, "Score: 1", s.line(4, 40))
	require.Equal(t, "Turn 4 - session abc", s.line(5, 40))
	require.Equal(t, 1, s.flushes)
}

func TestRendererBoxed(t *testing.T) {
	s := newFakeScreen()
	r := &Renderer{Screen: s}
	require.NoError(t, r.Draw(testFrame()))

	require.Equal(t, '┌', s.at(left-1, top))
	require.Equal(t, '┘', s.at(left+3, top+3))
	require.Equal(t, bodyRune, s.at(left+1, top+1))
	require.Equal(t, headRune, s.at(left+1, top+2))
	require.Equal(t, foodRune, s.at(left+2, top+2))
	require.Equal(t, rune(0), s.at(left, top+1))
	require.Equal(t, ColorRed, s.cells[[2]int{left + 2, top + 2}].fg)

	require.Equal(t, "Score: 1", s.line(top+5, 40))
	require.Equal(t, "Turn 4", s.line(top+6, 40))
}

func TestRendererRedrawClears(t *testing.T) {
	s := newFakeScreen()
	r := &Renderer{Screen: s, Numeric: true}
	require.NoError(t, r.Draw(testFrame()))

	f := testFrame()
	f.Rows = [][]game.Cell{
		{game.Empty, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Empty},
	}
	f.Turn = 10
	require.NoError(t, r.Draw(f))
	require.Equal(t, "0 0 0", s.line(1, 10))
	require.Equal(t, "Turn 10", s.line(5, 40))
	require.Equal(t, 2, s.flushes)
}

func TestRendererDrawMessage(t *testing.T) {
	s := newFakeScreen()
	r := &Renderer{Screen: s, Numeric: true}
	f := testFrame()
	require.NoError(t, r.Draw(f))
	require.NoError(t, r.DrawMessage(f, "board full"))
	require.Equal(t, "board full", s.line(6, 40))
}
