// Package reveal implements the cascading reveal algorithm and flag
// toggling. It mutates grid cells but knows nothing about sessions or
// win/loss bookkeeping.
package reveal

import (
	"errors"

	"sweeper/internal/grid"
)

// ErrCellFlagged indicates a reveal targeted a flagged cell. The caller must
// unflag it first; no state changes.
var ErrCellFlagged = errors.New("cell is flagged; unflag it before revealing")

// ErrCellAlreadyRevealed indicates a flag toggle targeted a revealed cell.
var ErrCellAlreadyRevealed = errors.New("cell is already revealed")

// Outcome reports the result of a single reveal call.
type Outcome struct {
	// HitMine is true when the revealed cell was a mine.
	HitMine bool
	// NewlyRevealed lists every cell transitioned Hidden -> Revealed by this
	// call, in discovery order, for incremental rendering.
	NewlyRevealed []grid.Coord
}

// Reveal uncovers the cell at (r, c).
//
// An already-revealed cell is a no-op with an empty outcome. A flagged cell
// is rejected with ErrCellFlagged. A mine is revealed without cascading and
// reported via HitMine. Any other cell starts a breadth-first cascade: a
// revealed cell with zero adjacent mines enqueues its hidden, non-mine,
// non-flagged neighbors. The frontier only admits hidden cells, so each cell
// transitions at most once and the walk terminates.
func Reveal(g *grid.Grid, r, c int) (Outcome, error) {
	cell, err := g.At(r, c)
	if err != nil {
		return Outcome{}, err
	}

	switch cell.State {
	case grid.Revealed:
		return Outcome{}, nil
	case grid.Flagged:
		return Outcome{}, ErrCellFlagged
	}

	start := grid.Coord{Row: r, Col: c}
	cell.State = grid.Revealed

	if cell.Mine {
		return Outcome{HitMine: true, NewlyRevealed: []grid.Coord{start}}, nil
	}

	out := Outcome{NewlyRevealed: []grid.Coord{start}}
	if cell.Adjacent > 0 {
		return out, nil
	}

	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, pos := range g.Neighbors(cur.Row, cur.Col) {
			neighbor, _ := g.At(pos.Row, pos.Col)
			if neighbor.State != grid.Hidden || neighbor.Mine {
				continue
			}
			neighbor.State = grid.Revealed
			out.NewlyRevealed = append(out.NewlyRevealed, pos)
			if neighbor.Adjacent == 0 {
				queue = append(queue, pos)
			}
		}
	}

	return out, nil
}

// ToggleFlag flips the cell at (r, c) between Hidden and Flagged and reports
// the resulting flagged state. Revealed cells cannot be flagged.
func ToggleFlag(g *grid.Grid, r, c int) (bool, error) {
	cell, err := g.At(r, c)
	if err != nil {
		return false, err
	}

	if cell.State == grid.Revealed {
		return false, ErrCellAlreadyRevealed
	}

	if cell.State == grid.Flagged {
		cell.State = grid.Hidden
		return false, nil
	}
	cell.State = grid.Flagged
	return true, nil
}
