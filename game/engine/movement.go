package engine

// CanRotate reports whether a 2×2 block fits with its top-left corner at
// (row, col)
func (g *Grid) CanRotate(row, col int) bool {
	return row >= 0 && row <= g.rows-2 && col >= 0 && col <= g.cols-2
}

// Rotate rotates the block at (row, col) in the given direction
func (g *Grid) Rotate(dir Direction, row, col int) error {
	switch dir {
	case Clockwise:
		return g.RotateClockwise(row, col)
	case CounterClockwise:
		return g.RotateCounterClockwise(row, col)
	default:
		return ErrOutOfRange
	}
}

// RotateClockwise moves each tile of the block one step clockwise:
// top-left takes bottom-left, bottom-left takes bottom-right, bottom-right
// takes top-right and top-right takes the old top-left.
func (g *Grid) RotateClockwise(row, col int) error {
	if !g.CanRotate(row, col) {
		return ErrOutOfRange
	}

	top, bottom := g.cells[row], g.cells[row+1]
	temp := top[col]
	top[col] = bottom[col]
	bottom[col] = bottom[col+1]
	bottom[col+1] = top[col+1]
	top[col+1] = temp

	return nil
}

// RotateCounterClockwise is the inverse of RotateClockwise: top-left takes
// top-right, top-right takes bottom-right, bottom-right takes bottom-left
// and bottom-left takes the old top-left.
func (g *Grid) RotateCounterClockwise(row, col int) error {
	if !g.CanRotate(row, col) {
		return ErrOutOfRange
	}

	top, bottom := g.cells[row], g.cells[row+1]
	temp := top[col]
	top[col] = top[col+1]
	top[col+1] = bottom[col+1]
	bottom[col+1] = bottom[col]
	bottom[col] = temp

	return nil
}
