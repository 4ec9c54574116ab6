package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	grid, err := Parse(strings.NewReader("2 3\n6 5 4\n3 2 1\n"))
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}

	if grid.Rows() != 2 || grid.Cols() != 3 {
		t.Errorf("Expected 2x3 grid, got %dx%d", grid.Rows(), grid.Cols())
	}
	if want := []int{6, 5, 4, 3, 2, 1}; !slices.Equal(grid.Tiles(), want) {
		t.Errorf("Expected tiles %v, got %v", want, grid.Tiles())
	}
}

func TestParse_FreeFormWhitespace(t *testing.T) {
	grid, err := Parse(strings.NewReader("  2\t2 4\n\n 3 2\r\n1   trailing junk"))
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}

	if want := []int{4, 3, 2, 1}; !slices.Equal(grid.Tiles(), want) {
		t.Errorf("Expected tiles %v, got %v", want, grid.Tiles())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing cols", "3"},
		{"non-numeric size", "two 2 1 2 3 4"},
		{"rows too small", "1 2 1 2"},
		{"cols too large", "2 11 " + strings.Repeat("1 ", 22)},
		{"truncated tiles", "2 2 1 2 3"},
		{"non-numeric tile", "2 2 1 2 x 4"},
		{"tile zero", "2 2 0 1 2 3"},
		{"tile above range", "2 2 1 2 3 5"},
		{"negative tile", "2 2 -1 2 3 4"},
		{"duplicate tile", "2 2 1 2 2 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidPuzzle) {
				t.Errorf("Expected ErrInvalidPuzzle, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte("2 2\n3 1\n4 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write puzzle: %v", err)
	}

	grid, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load puzzle: %v", err)
	}
	if grid.At(0, 0) != 3 {
		t.Errorf("Expected top-left 3, got %d", grid.At(0, 0))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrInvalidPuzzle) {
		t.Errorf("Expected ErrInvalidPuzzle, got %v", err)
	}
}
