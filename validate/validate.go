// Command validate provides a small CLI that checks puzzle files and reports
// every problem it finds instead of stopping at the first one. It checks:
//   - Both dimensions are integers within the supported range
//   - Every tile is an integer within 1..rows*cols
//   - No tile appears twice
//   - The file holds rows*cols tiles (extra content is reported but allowed)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wricardo/rotpuzzle/game/config"
	"github.com/wricardo/rotpuzzle/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validatePuzzle loads and validates a single puzzle file.
func validatePuzzle(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		result.fail("Missing grid dimensions")
		return result
	}

	rows, rowsOK := parseDimension(&result, "rows", fields[0])
	cols, colsOK := parseDimension(&result, "cols", fields[1])
	if !rowsOK || !colsOK {
		// Without a size the tiles cannot be checked
		return result
	}

	total := rows * cols
	tiles := fields[2:]
	if len(tiles) < total {
		result.fail("Expected %d tiles, found %d", total, len(tiles))
	}

	seen := make(map[int]int, total)
	for i, field := range tiles {
		if i >= total {
			break
		}
		row, col := i/cols+1, i%cols+1

		v, err := strconv.Atoi(field)
		if err != nil {
			result.fail("Tile at [%d,%d] is not an integer: %q", row, col, field)
			continue
		}
		if v < 1 || v > total {
			result.fail("Tile %d at [%d,%d] is outside 1..%d", v, row, col, total)
			continue
		}
		if first, dup := seen[v]; dup {
			result.fail("Tile %d at [%d,%d] repeats the one at [%d,%d]", v, row, col, first/cols+1, first%cols+1)
			continue
		}
		seen[v] = i
	}

	if !result.Valid {
		return result
	}

	// The loader must agree with the checks above
	grid, err := config.Load(filePath)
	if err != nil {
		result.fail("%v", err)
		return result
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid %d x %d", grid.Rows(), grid.Cols()))
	if extra := len(tiles) - total; extra > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Ignoring %d trailing fields", extra))
	}
	if grid.IsSolved() {
		result.Errors = append(result.Errors, "✓ Already solved")
	}

	return result
}

func parseDimension(result *ValidationResult, name, field string) (int, bool) {
	v, err := strconv.Atoi(field)
	if err != nil {
		result.fail("Grid %s is not an integer: %q", name, field)
		return 0, false
	}
	if v < engine.MinSize || v > engine.MaxSize {
		result.fail("Grid %s %d is outside %d..%d", name, v, engine.MinSize, engine.MaxSize)
		return 0, false
	}
	return v, true
}

// main validates each file named on the command line, printing a concise
// report and exiting with non-zero status if any are invalid.
func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s PUZZLE-FILE...\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePuzzle(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All puzzles are valid!")
	} else {
		fmt.Println("❌ Some puzzles have errors")
		os.Exit(1)
	}
}
