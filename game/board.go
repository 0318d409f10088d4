package game

import (
	"bytes"
	"errors"
	"math/rand"
	"strconv"
)

// ErrBoardFull is returned when there is no empty cell left to place food on.
var ErrBoardFull = errors.New("game: board full")

// Cell is the content of a single board square. The numeric values are what
// the plain renderer prints.
type Cell uint8

// Cell values.
const (
	Empty Cell = iota
	SnakeSegment
	Food
)

// Board is the grid view derived from a Body plus one food cell. It is
// rebuilt from scratch every tick and never patched.
type Board struct {
	width  int
	height int
	cells  [][]Cell
	food   Point
	fed    bool
}

// NewBoard returns an empty board with no food.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  emptyCells(width, height),
	}
}

func emptyCells(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return cells
}

// Width of the board.
func (b *Board) Width() int { return b.width }

// Height of the board.
func (b *Board) Height() int { return b.height }

// Rebuild resets the board, marks every snake segment that lies on the grid
// and places a new food cell. When no empty cell is left the board keeps the
// snake, has no food and ErrBoardFull is returned.
func (b *Board) Rebuild(body *Body, rng *rand.Rand) (Point, error) {
	b.cells = emptyCells(b.width, b.height)
	b.fed = false

	for _, p := range body.Segments() {
		if p.In(b.width, b.height) {
			b.cells[p.Y][p.X] = SnakeSegment
		}
	}

	food, err := b.placeFood(rng)
	if err != nil {
		return Point{}, err
	}
	b.cells[food.Y][food.X] = Food
	b.food = food
	b.fed = true
	return food, nil
}

// placeFood picks uniformly among the empty cells.
func (b *Board) placeFood(rng *rand.Rand) (Point, error) {
	open := b.emptyPoints()
	if len(open) == 0 {
		return Point{}, ErrBoardFull
	}
	return open[rng.Intn(len(open))], nil
}

func (b *Board) emptyPoints() []Point {
	points := make([]Point, 0, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] == Empty {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Food returns the current food cell, if any.
func (b *Board) Food() (Point, bool) {
	return b.food, b.fed
}

// Cell returns the content at p. Points off the grid are Empty.
func (b *Board) Cell(p Point) Cell {
	if !p.In(b.width, b.height) {
		return Empty
	}
	return b.cells[p.Y][p.X]
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid, row-major.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, len(b.cells))
	for y, row := range b.cells {
		rows[y] = append([]Cell(nil), row...)
	}
	return rows
}

// String prints the grid the way the plain renderer does: one row per line,
// every cell as its number followed by a space.
func (b *Board) String() string {
	var buf bytes.Buffer
	for _, row := range b.cells {
		for _, cell := range row {
			buf.WriteString(strconv.Itoa(int(cell)))
			buf.WriteByte(' ')
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
