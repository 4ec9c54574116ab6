package engine

import (
	"fmt"
	"strings"
)

// Render returns the boxed grid text used by the show command.
//
// The layout is part of the wire protocol and must not change:
//
//	+---+---+
//	|  1|  2|
//	+---+---+
//	|  3|  4|
//	+---+---+
func (g *Grid) Render() string {
	var b strings.Builder

	border := "+" + strings.Repeat("---+", g.cols) + "\n"
	b.WriteString(border)
	for _, row := range g.cells {
		b.WriteString("|")
		for _, tile := range row {
			fmt.Fprintf(&b, "%3d|", tile)
		}
		b.WriteString("\n")
		b.WriteString(border)
	}

	return b.String()
}
