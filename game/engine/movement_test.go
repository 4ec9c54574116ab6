package engine

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func assertTiles(t *testing.T, grid *Grid, want ...int) {
	t.Helper()
	if got := grid.Tiles(); !slices.Equal(got, want) {
		t.Errorf("Expected tiles %v, got %v", want, got)
	}
}

func TestRotateClockwise(t *testing.T) {
	grid := createTestGrid(t, 2, 2, 2, 1, 4, 3)

	if err := grid.RotateClockwise(0, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assertTiles(t, grid, 4, 2, 3, 1)
	if grid.IsSolved() {
		t.Error("Grid should not be solved")
	}
}

func TestRotateClockwise_ReachesSolved(t *testing.T) {
	grid := createTestGrid(t, 2, 2, 3, 1, 4, 2)

	steps := [][]int{
		{4, 3, 2, 1},
		{2, 4, 1, 3},
		{1, 2, 3, 4},
	}
	for i, want := range steps {
		if err := grid.RotateClockwise(0, 0); err != nil {
			t.Fatalf("Step %d: unexpected error: %v", i+1, err)
		}
		assertTiles(t, grid, want...)
		if solved := grid.IsSolved(); solved != (i == len(steps)-1) {
			t.Errorf("Step %d: IsSolved() = %v", i+1, solved)
		}
	}
}

func TestRotateCounterClockwise(t *testing.T) {
	grid := createTestGrid(t, 2, 2, 3, 1, 4, 2)

	if err := grid.RotateCounterClockwise(0, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assertTiles(t, grid, 1, 2, 3, 4)
	if !grid.IsSolved() {
		t.Error("Grid should be solved")
	}
}

func TestRotate_InteriorBlock(t *testing.T) {
	grid, err := NewSolvedGrid(3, 3)
	if err != nil {
		t.Fatalf("Failed to create grid: %v", err)
	}

	if err := grid.RotateClockwise(1, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Block (1,1)-(2,2) holds 5 6 / 8 9 before the rotation
	assertTiles(t, grid, 1, 2, 3, 4, 8, 5, 7, 9, 6)
}

func TestRotate_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"last row", 2, 0},
		{"last col", 0, 3},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"far away", 100, 100},
	}

	for _, tt := range tests {
		for _, dir := range []Direction{Clockwise, CounterClockwise} {
			t.Run(tt.name+"/"+dir.String(), func(t *testing.T) {
				grid := createTestGrid(t, 3, 4, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
				before := grid.Tiles()

				err := grid.Rotate(dir, tt.row, tt.col)
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("Expected ErrOutOfRange, got %v", err)
				}
				assertTiles(t, grid, before...)
			})
		}
	}
}

func TestRotate_BoundaryCorners(t *testing.T) {
	grid, err := NewSolvedGrid(4, 5)
	if err != nil {
		t.Fatalf("Failed to create grid: %v", err)
	}

	if err := grid.RotateClockwise(grid.Rows()-2, grid.Cols()-2); err != nil {
		t.Errorf("Bottom-right block should rotate, got %v", err)
	}
	if err := grid.RotateClockwise(grid.Rows()-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for row rows-1, got %v", err)
	}
	if err := grid.RotateClockwise(0, grid.Cols()-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for col cols-1, got %v", err)
	}
}

func TestRotate_UnknownDirection(t *testing.T) {
	grid := createTestGrid(t, 2, 2, 1, 2, 3, 4)

	if err := grid.Rotate(Direction(7), 0, 0); err == nil {
		t.Error("Expected error for unknown direction")
	}
	assertTiles(t, grid, 1, 2, 3, 4)
}

func TestRotate_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		rows := MinSize + rng.Intn(MaxSize-MinSize+1)
		cols := MinSize + rng.Intn(MaxSize-MinSize+1)
		grid, err := NewGrid(rows, cols, shuffledTiles(rng, rows*cols))
		if err != nil {
			t.Fatalf("Failed to create grid: %v", err)
		}

		for r := 0; r <= rows-2; r++ {
			for c := 0; c <= cols-2; c++ {
				before := grid.Tiles()

				if err := grid.RotateClockwise(r, c); err != nil {
					t.Fatalf("RotateClockwise(%d, %d): %v", r, c, err)
				}
				if err := grid.RotateCounterClockwise(r, c); err != nil {
					t.Fatalf("RotateCounterClockwise(%d, %d): %v", r, c, err)
				}
				if !slices.Equal(grid.Tiles(), before) {
					t.Fatalf("Round trip at (%d, %d) changed %v into %v", r, c, before, grid.Tiles())
				}
			}
		}
	}
}

func TestRotate_FourTurnsIsIdentity(t *testing.T) {
	grid := createTestGrid(t, 2, 3, 5, 3, 1, 6, 4, 2)
	before := grid.Tiles()

	for i := 0; i < 4; i++ {
		grid.RotateClockwise(0, 1)
	}
	assertTiles(t, grid, before...)
}

func TestRotate_PreservesPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid, err := NewGrid(6, 7, shuffledTiles(rng, 42))
	if err != nil {
		t.Fatalf("Failed to create grid: %v", err)
	}

	for i := 0; i < 1000; i++ {
		dir := Direction(rng.Intn(2))
		grid.Rotate(dir, rng.Intn(grid.Rows()+1)-1, rng.Intn(grid.Cols()+1)-1)

		if err := ValidateTiles(grid.Rows(), grid.Cols(), grid.Tiles()); err != nil {
			t.Fatalf("Move %d broke the permutation: %v", i, err)
		}

		solved := slices.Equal(grid.Tiles(), sequence(42))
		if grid.IsSolved() != solved {
			t.Fatalf("Move %d: IsSolved() = %v but tiles are %v", i, grid.IsSolved(), grid.Tiles())
		}
	}
}

func shuffledTiles(rng *rand.Rand, n int) []int {
	tiles := sequence(n)
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
	return tiles
}

func sequence(n int) []int {
	tiles := make([]int, n)
	for i := range tiles {
		tiles[i] = i + 1
	}
	return tiles
}
