// Package service interprets puzzle requests against a grid.
//
// The service package implements:
//   - Parsing request text into a typed Command
//   - Executing a Command against an engine.Grid
//   - Producing the Response sent back to the client
//
// Architecture:
//
// The service layer sits between the transport (the request/response queues
// driven by the server loop) and the game engine. It holds no state of its
// own: the caller owns the grid and lends it for the duration of one
// command.
//
// Usage:
//
//	reply := service.Interpret("clockwise 0 1", grid)
//	// reply is "OK", "solved", "error", or a rendered grid for "show"
//
// Requests:
//
//	clockwise R C   rotate the block at (R, C) clockwise
//	counter R C     rotate the block at (R, C) counter-clockwise
//	show            render the grid
//
// Anything else, including coordinates outside the grid, produces "error".
// Interpret never panics on any input.
package service
