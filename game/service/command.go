package service

import (
	"strconv"
	"strings"
)

// Parse turns request text into a Command.
//
// A request of exactly three whitespace-separated fields is a rotation when
// the first field is "clockwise" or "counter" and the other two are
// integers. The request "show" (exactly) asks for a render. Everything else
// is Malformed.
func Parse(request string) Command {
	fields := strings.Fields(request)
	if len(fields) == 3 {
		var kind CommandKind
		switch fields[0] {
		case WordClockwise:
			kind = RotateClockwise
		case WordCounter:
			kind = RotateCounterClockwise
		default:
			return Command{Kind: Malformed}
		}

		row, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{Kind: Malformed}
		}
		col, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{Kind: Malformed}
		}

		return Command{Kind: kind, Row: row, Col: col}
	}

	if request == WordShow {
		return Command{Kind: Show}
	}

	return Command{Kind: Malformed}
}
