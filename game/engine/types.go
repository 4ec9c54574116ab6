package engine

import (
	"errors"
	"fmt"
)

const (
	// Validation constants
	MinSize = 2
	MaxSize = 10
)

var (
	ErrOutOfRange  = errors.New("rotation out of range")
	ErrInvalidGrid = errors.New("invalid grid")
)

// Direction is the sense of a 2×2 block rotation
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns the wire word for the direction
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
