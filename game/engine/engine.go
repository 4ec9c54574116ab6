package engine

import "fmt"

// Grid is the rows×cols tile matrix.
//
// Cells always hold a permutation of 1..rows*cols; the only mutations are
// the rotations, which swap values among four cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

// NewGrid creates a grid from tiles listed in row-major order
func NewGrid(rows, cols int, tiles []int) (*Grid, error) {
	if err := ValidateTiles(rows, cols, tiles); err != nil {
		return nil, err
	}

	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		copy(cells[r], tiles[r*cols:(r+1)*cols])
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// NewSolvedGrid creates a grid already in the solved arrangement
func NewSolvedGrid(rows, cols int) (*Grid, error) {
	tiles := make([]int, rows*cols)
	for i := range tiles {
		tiles[i] = i + 1
	}
	return NewGrid(rows, cols, tiles)
}

// ValidateTiles checks the size bounds and that tiles is a permutation of
// 1..rows*cols
func ValidateTiles(rows, cols int, tiles []int) error {
	if rows < MinSize || rows > MaxSize {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrInvalidGrid, MinSize, MaxSize, rows)
	}
	if cols < MinSize || cols > MaxSize {
		return fmt.Errorf("%w: cols must be between %d and %d, got %d", ErrInvalidGrid, MinSize, MaxSize, cols)
	}

	total := rows * cols
	if len(tiles) != total {
		return fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidGrid, total, len(tiles))
	}

	seen := make([]bool, total)
	for i, tile := range tiles {
		if tile < 1 || tile > total {
			return fmt.Errorf("%w: tile %d at index %d is outside 1..%d", ErrInvalidGrid, tile, i, total)
		}
		if seen[tile-1] {
			return fmt.Errorf("%w: tile %d appears more than once", ErrInvalidGrid, tile)
		}
		seen[tile-1] = true
	}

	return nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the tile at the given cell. It panics when the cell is outside
// the grid, like slice indexing does.
func (g *Grid) At(row, col int) int {
	return g.cells[row][col]
}

// Tiles returns a row-major copy of the cells
func (g *Grid) Tiles() []int {
	tiles := make([]int, 0, g.rows*g.cols)
	for _, row := range g.cells {
		tiles = append(tiles, row...)
	}
	return tiles
}

// IsSolved reports whether the cells read 1, 2, ..., rows*cols in
// row-major order
func (g *Grid) IsSolved() bool {
	want := 1
	for _, row := range g.cells {
		for _, tile := range row {
			if tile != want {
				return false
			}
			want++
		}
	}
	return true
}
