package service

import (
	"github.com/wricardo/rotpuzzle/game/engine"
)

// Interpret parses request, applies it to grid and returns the wire reply
func Interpret(request string, grid *engine.Grid) string {
	return Execute(Parse(request), grid).String()
}

// Execute applies cmd to grid.
//
// Only rotations mutate the grid, and only when the coordinates are in
// range. A successful rotation that leaves the grid solved reports Solved
// instead of Ok.
func Execute(cmd Command, grid *engine.Grid) Response {
	switch cmd.Kind {
	case RotateClockwise, RotateCounterClockwise:
		dir, _ := cmd.Direction()
		if err := grid.Rotate(dir, cmd.Row, cmd.Col); err != nil {
			return Response{Kind: Error}
		}
		if grid.IsSolved() {
			return Response{Kind: Solved}
		}
		return Response{Kind: Ok}

	case Show:
		return Response{Kind: GridRender, Text: grid.Render()}

	default:
		return Response{Kind: Error}
	}
}
