// Package position parses player-typed cell positions like "B3", "3B",
// "b 3", or "3 b" into zero-based grid coordinates. The game engine never
// sees raw strings; this package belongs to the command layer.
package position

import (
	"errors"
	"strconv"
	"strings"

	"sweeper/internal/grid"
)

// ErrInvalidPosition indicates a token that is not a letter+number pair.
var ErrInvalidPosition = errors.New("position must combine a column letter and a row number, like B3")

// Parse converts one or two command tokens into a coordinate. The letter is
// the column (A..Z, case-insensitive, mapping to 0..25) and the number is
// the one-based row. Letter-first and number-first orders are both accepted.
func Parse(args []string) (grid.Coord, error) {
	if len(args) == 0 || len(args) > 2 {
		return grid.Coord{}, ErrInvalidPosition
	}

	token := strings.ToLower(strings.Join(args, ""))
	if len(token) < 2 {
		return grid.Coord{}, ErrInvalidPosition
	}

	var rowPart, colPart string
	if isColumnLetter(token[0]) {
		colPart = token[:1]
		rowPart = token[1:]
	} else {
		colPart = token[len(token)-1:]
		rowPart = token[:len(token)-1]
	}

	if !isColumnLetter(colPart[0]) {
		return grid.Coord{}, ErrInvalidPosition
	}
	row, err := strconv.Atoi(rowPart)
	if err != nil || row < 1 {
		return grid.Coord{}, ErrInvalidPosition
	}

	return grid.Coord{Row: row - 1, Col: int(colPart[0] - 'a')}, nil
}

// ColumnLabel returns the display letter for a zero-based column index.
func ColumnLabel(col int) string {
	if col < 0 || col > 25 {
		return "?"
	}
	return string(rune('A' + col))
}

func isColumnLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
