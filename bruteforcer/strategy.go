package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/rotpuzzle/game/engine"
)

// ErrSearchLimit is returned when the search visits maxStates grids
// without reaching the solved one
var ErrSearchLimit = errors.New("search limit reached")

// Move is one rotation of the block with top-left corner (Row, Col)
type Move struct {
	Dir      engine.Direction
	Row, Col int
}

// Request returns the wire request for the move
func (m Move) Request() string {
	return fmt.Sprintf("%s %d %d", m.Dir, m.Row, m.Col)
}

// node is a visited grid and the move that first reached it
type node struct {
	parent string
	move   Move
}

// BFS finds a shortest rotation sequence that solves grid. The grid is not
// modified.
func BFS(grid *engine.Grid, maxStates int) ([]Move, error) {
	if grid.IsSolved() {
		return []Move{}, nil
	}

	rows, cols := grid.Rows(), grid.Cols()
	start := stateKey(grid.Tiles())
	visited := map[string]node{start: {}}
	queue := [][]int{grid.Tiles()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentKey := stateKey(current)

		for _, move := range allMoves(rows, cols) {
			next, err := engine.NewGrid(rows, cols, current)
			if err != nil {
				return nil, err
			}
			if err := next.Rotate(move.Dir, move.Row, move.Col); err != nil {
				return nil, err
			}

			tiles := next.Tiles()
			key := stateKey(tiles)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = node{parent: currentKey, move: move}

			if next.IsSolved() {
				return reconstruct(visited, start, key), nil
			}
			if len(visited) >= maxStates {
				return nil, fmt.Errorf("%w: %d grids", ErrSearchLimit, len(visited))
			}
			queue = append(queue, tiles)
		}
	}

	// Rotations reach every permutation only up to parity on some sizes
	return nil, fmt.Errorf("no solution among %d reachable grids", len(visited))
}

// allMoves lists every rotation available on a rows x cols grid
func allMoves(rows, cols int) []Move {
	moves := make([]Move, 0, 2*(rows-1)*(cols-1))
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			moves = append(moves,
				Move{Dir: engine.Clockwise, Row: row, Col: col},
				Move{Dir: engine.CounterClockwise, Row: row, Col: col},
			)
		}
	}
	return moves
}

func reconstruct(visited map[string]node, start, goal string) []Move {
	var path []Move
	for key := goal; key != start; key = visited[key].parent {
		path = append(path, visited[key].move)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func stateKey(tiles []int) string {
	var b strings.Builder
	for i, v := range tiles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// parseRender rebuilds a grid from the text of a show reply
func parseRender(text string) (*engine.Grid, error) {
	var tiles []int
	rows, cols := 0, 0

	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		if cols == 0 {
			cols = len(cells)
		} else if len(cells) != cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", rows+1, len(cells), cols)
		}
		for _, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rows+1, err)
			}
			tiles = append(tiles, v)
		}
		rows++
	}

	return engine.NewGrid(rows, cols, tiles)
}
