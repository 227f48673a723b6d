// Package grid provides the minefield storage: cell records, bounds checks,
// and deterministic neighbor enumeration. It owns no game logic; the reveal
// engine and mine layer mutate cells through it.
package grid

import "errors"

// MaxDimension caps rows and columns to prevent pathological allocations.
const MaxDimension = 100

// ErrInvalidDimensions indicates rows or columns outside [1, MaxDimension].
var ErrInvalidDimensions = errors.New("grid dimensions must be between 1 and 100")

// ErrOutOfBounds indicates a cell position outside the grid.
var ErrOutOfBounds = errors.New("cell position is out of bounds")

// CellState is the player-visible state of a single cell.
type CellState int

const (
	// Hidden is the initial state of every cell.
	Hidden CellState = iota
	// Revealed is terminal: a revealed cell never becomes hidden or flagged again.
	Revealed
	// Flagged marks a suspected mine. Flagged cells cannot be revealed directly.
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Coord identifies a cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool
	Adjacent int // mines among the up-to-8 neighbors, 0..8
	State    CellState
}

// Grid is a fixed-size matrix of cells. Shape is immutable once created.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New creates a grid of hidden, mine-free cells.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxDimension || cols > MaxDimension {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total cell count.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (r, c) addresses a cell.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns a mutable reference to the cell at (r, c).
func (g *Grid) At(r, c int) (*Cell, error) {
	if !g.InBounds(r, c) {
		return nil, ErrOutOfBounds
	}
	return &g.cells[r][c], nil
}

// Neighbors returns the in-bounds neighbors of (r, c) in row-major order of
// the 3x3 block excluding the center. The order is fixed so callers that
// iterate over it behave deterministically.
func (g *Grid) Neighbors(r, c int) []Coord {
	neighbors := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.InBounds(r+dr, c+dc) {
				neighbors = append(neighbors, Coord{Row: r + dr, Col: c + dc})
			}
		}
	}
	return neighbors
}
