package game

// Bounds selects how far the head may travel towards the right and bottom
// edges.
type Bounds int

const (
	// Exclusive keeps the head on the grid: 0 <= x < width, 0 <= y < height.
	Exclusive Bounds = iota
	// Inclusive lets the head reach x == width and y == height, one cell past
	// the rendered grid. Cells off the grid are simply not drawn.
	Inclusive
)

// Body is the snake: a steered head and a bounded, most-recent-first history
// of the positions the head left behind.
type Body struct {
	Head      Point
	History   []Point
	MaxLength int
}

// NewBody returns a snake with an empty history.
func NewBody(head Point, maxLength int) *Body {
	return &Body{
		Head:      head,
		History:   []Point{},
		MaxLength: maxLength,
	}
}

// Advance moves the snake 1 space in the given direction. The pre-move head is
// recorded first and the history is cut so that len(History) < MaxLength.
// Moves that would leave the allowed area are dropped; Exit is a no-op.
func (b *Body) Advance(width, height int, direction Direction, bounds Bounds) {
	b.History = append([]Point{b.Head}, b.History...)
	keep := b.MaxLength - 1
	if keep < 0 {
		keep = 0
	}
	if len(b.History) > keep {
		b.History = b.History[:keep]
	}

	maxX, maxY := width-1, height-1
	if bounds == Inclusive {
		maxX, maxY = width, height
	}

	switch direction {
	case Up:
		if b.Head.Y > 0 {
			b.Head.Y--
		}
	case Down:
		if b.Head.Y < maxY {
			b.Head.Y++
		}
	case Left:
		if b.Head.X > 0 {
			b.Head.X--
		}
	case Right:
		if b.Head.X < maxX {
			b.Head.X++
		}
	}
}

// Segments returns the head followed by the history.
func (b *Body) Segments() []Point {
	segments := make([]Point, 0, len(b.History)+1)
	segments = append(segments, b.Head)
	return append(segments, b.History...)
}

// Score is the number of trailing segments.
func (b *Body) Score() int {
	return len(b.History)
}

// Grow raises the length cap by one. The extra segment appears on the next
// Advance.
func (b *Body) Grow() {
	b.MaxLength++
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (b *Body) Clone() *Body {
	history := make([]Point, len(b.History))
	copy(history, b.History)
	return &Body{
		Head:      b.Head,
		History:   history,
		MaxLength: b.MaxLength,
	}
}
