package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePuzzle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write puzzle: %v", err)
	}
	return path
}

func TestValidatePuzzle_Valid(t *testing.T) {
	path := writePuzzle(t, "3 3\n2 1 3\n4 5 6\n7 8 9\n")

	result := validatePuzzle(path)
	if !result.Valid {
		t.Errorf("Expected valid puzzle, but got errors: %v", result.Errors)
	}
	if result.File != "puzzle.txt" {
		t.Errorf("Expected file name puzzle.txt, got %s", result.File)
	}
	if !containsMessage(result.Errors, "✓ Grid 3 x 3") {
		t.Errorf("Expected grid info, got %v", result.Errors)
	}
}

func TestValidatePuzzle_SolvedAndTrailing(t *testing.T) {
	path := writePuzzle(t, "2 2 1 2 3 4 comment here\n")

	result := validatePuzzle(path)
	if !result.Valid {
		t.Fatalf("Trailing content should be allowed, got %v", result.Errors)
	}
	if !containsMessage(result.Errors, "Ignoring 2 trailing fields") {
		t.Errorf("Expected trailing field note, got %v", result.Errors)
	}
	if !containsMessage(result.Errors, "Already solved") {
		t.Errorf("Expected solved note, got %v", result.Errors)
	}
}

func TestValidatePuzzle_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{"Missing grid dimensions"}},
		{"bad rows", "x 2\n1 2 3 4", []string{"Grid rows is not an integer"}},
		{"both out of range", "1 11\n", []string{"Grid rows 1 is outside 2..10", "Grid cols 11 is outside 2..10"}},
		{"short", "2 2\n1 2 3", []string{"Expected 4 tiles, found 3"}},
		{"several problems", "2 2\n0 a 2 2", []string{
			"Tile 0 at [1,1] is outside 1..4",
			"Tile at [1,2] is not an integer",
			"Tile 2 at [2,2] repeats the one at [2,1]",
		}},
		{"duplicate", "2 2\n1 2 3 3", []string{"Tile 3 at [2,2] repeats"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePuzzle(writePuzzle(t, tt.content))
			if result.Valid {
				t.Fatal("Expected invalid puzzle")
			}
			for _, want := range tt.want {
				if !containsMessage(result.Errors, want) {
					t.Errorf("Expected %q in %v", want, result.Errors)
				}
			}
		})
	}
}

func TestValidatePuzzle_MissingFile(t *testing.T) {
	result := validatePuzzle("/non/existent/puzzle.txt")

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !containsMessage(result.Errors, "Failed to read file") {
		t.Errorf("Expected read error, got %v", result.Errors)
	}
}

// containsMessage reports whether any message contains substr
func containsMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
