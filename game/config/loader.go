package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wricardo/rotpuzzle/game/engine"
)

var (
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

// Load reads and validates a puzzle file
func Load(filename string) (*engine.Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a puzzle definition from r and builds the grid
func Parse(r io.Reader) (*engine.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	rows, err := nextInt(scanner, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := nextInt(scanner, "cols")
	if err != nil {
		return nil, err
	}

	// Check the size before reading tiles so a huge header cannot make us
	// allocate
	if rows < engine.MinSize || rows > engine.MaxSize || cols < engine.MinSize || cols > engine.MaxSize {
		return nil, fmt.Errorf("%w: size %dx%d outside %d..%d", ErrInvalidPuzzle, rows, cols, engine.MinSize, engine.MaxSize)
	}

	total := rows * cols
	tiles := make([]int, 0, total)
	for len(tiles) < total {
		tile, err := nextInt(scanner, fmt.Sprintf("tile %d", len(tiles)+1))
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}

	grid, err := engine.NewGrid(rows, cols, tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPuzzle, err)
	}

	return grid, nil
}

// nextInt scans one integer token, naming what was expected on failure
func nextInt(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrInvalidPuzzle, what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidPuzzle, what)
	}

	value, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %q", ErrInvalidPuzzle, what, scanner.Text())
	}

	return value, nil
}
