// Package config loads puzzle definitions for the rotation puzzle server.
//
// Puzzle Format:
//
// A puzzle file is plain text made of whitespace-separated integers. The
// first two are the number of rows and columns, each between 2 and 10. They
// are followed by rows*cols tile values in row-major order, which must be a
// permutation of 1..rows*cols:
//
//	3 3
//	1 2 3
//	4 8 5
//	7 9 6
//
// Line breaks carry no meaning. Anything after the last tile is ignored.
//
// Usage:
//
//	grid, err := config.Load("puzzle.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every problem (unreadable file, non-numeric token, size out of range, tile
// out of range, duplicate tile, missing tiles) is reported as an error
// wrapping ErrInvalidPuzzle.
package config
