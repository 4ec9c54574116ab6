package service

import (
	"fmt"

	"github.com/wricardo/rotpuzzle/game/engine"
)

// Wire words for requests and fixed responses
const (
	WordClockwise = "clockwise"
	WordCounter   = "counter"
	WordShow      = "show"

	ReplyOK     = "OK"
	ReplySolved = "solved"
	ReplyError  = "error"
)

// CommandKind identifies a parsed request
type CommandKind int

const (
	Malformed CommandKind = iota
	RotateClockwise
	RotateCounterClockwise
	Show
)

// String returns a readable name for logs
func (k CommandKind) String() string {
	switch k {
	case RotateClockwise:
		return "rotate_clockwise"
	case RotateCounterClockwise:
		return "rotate_counter_clockwise"
	case Show:
		return "show"
	default:
		return "malformed"
	}
}

// Command is one parsed request. Row and Col are only meaningful for
// rotations and may be out of range; the grid decides that.
type Command struct {
	Kind CommandKind
	Row  int
	Col  int
}

// Direction maps a rotation command to the engine direction
func (c Command) Direction() (engine.Direction, bool) {
	switch c.Kind {
	case RotateClockwise:
		return engine.Clockwise, true
	case RotateCounterClockwise:
		return engine.CounterClockwise, true
	default:
		return 0, false
	}
}

// String formats the command back into its request form
func (c Command) String() string {
	switch c.Kind {
	case RotateClockwise:
		return fmt.Sprintf("%s %d %d", WordClockwise, c.Row, c.Col)
	case RotateCounterClockwise:
		return fmt.Sprintf("%s %d %d", WordCounter, c.Row, c.Col)
	case Show:
		return WordShow
	default:
		return "malformed"
	}
}

// ResponseKind identifies a response variant
type ResponseKind int

const (
	Ok ResponseKind = iota
	Solved
	Error
	GridRender
)

// Response is produced fresh for every command
type Response struct {
	Kind ResponseKind
	Text string // Rendered grid, only set for GridRender
}

// String returns the wire text of the response
func (r Response) String() string {
	switch r.Kind {
	case Ok:
		return ReplyOK
	case Solved:
		return ReplySolved
	case GridRender:
		return r.Text
	default:
		return ReplyError
	}
}
