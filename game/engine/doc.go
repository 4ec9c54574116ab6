// Package engine provides the core puzzle logic for the rotation puzzle.
//
// The engine package implements:
//   - The rows×cols tile grid and its permutation invariant
//   - Clockwise and counter-clockwise rotation of 2×2 blocks
//   - The solved-state predicate
//   - The fixed-width boxed rendering used on the wire
//
// Core Types:
//
// Grid holds the tile matrix. It is created once from a validated tile list
// and then mutated in place by rotations, which only ever permute the four
// values of one block. Direction selects the rotation sense.
//
// Usage:
//
//	grid, err := engine.NewGrid(2, 2, []int{3, 1, 4, 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := grid.RotateClockwise(0, 0); err != nil {
//		// out of range, grid untouched
//	}
//	fmt.Print(grid.Render())
//
// Puzzle Rules:
//
// A grid is solved when reading its cells in row-major order yields
// 1, 2, ..., rows*cols. A rotation at (row, col) moves the four tiles of the
// block whose top-left corner is (row, col); the corner must leave room for
// the block, so row is at most rows-2 and col at most cols-2.
package engine
