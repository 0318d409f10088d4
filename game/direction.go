package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is a single player input. Exit is carried on the same channel as
// the movement directions and is interpreted by the caller, never by Body.
type Direction int

// Possible inputs.
const (
	Up Direction = iota
	Down
	Left
	Right
	Exit
)

var directionNames = map[Direction]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
	Exit:  "Exit",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "Unknown"
}

// ParseDirection turns a user supplied move ("up", "u", "q", ...) into a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "exit", "q":
		return Exit, nil
	}
	return Exit, errors.Errorf("game: unknown direction %q", s)
}
