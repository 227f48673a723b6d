package game

import "sweeper/internal/grid"

// CellKind is the render-facing classification of a cell.
type CellKind int

const (
	// CellHidden is an unrevealed, unflagged cell.
	CellHidden CellKind = iota
	// CellFlagged is a cell the player marked as a suspected mine.
	CellFlagged
	// CellRevealedEmpty is a revealed non-mine cell; Adjacent carries its count.
	CellRevealedEmpty
	// CellRevealedMine is a revealed mine.
	CellRevealedMine
)

// CellView is the read-only render model of a single cell.
type CellView struct {
	Kind     CellKind
	Adjacent int // meaningful only for CellRevealedEmpty
}

// Snapshot is a read-only copy of everything the rendering layer needs.
// Mutating it has no effect on the session.
type Snapshot struct {
	Rows          int
	Cols          int
	Status        Status
	MineCount     int
	FlagCount     int
	RevealedCount int
	Cells         [][]CellView
}

// Snapshot captures the current board for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:          s.grid.Rows(),
		Cols:          s.grid.Cols(),
		Status:        s.status,
		MineCount:     s.mineCount,
		FlagCount:     s.flagCount,
		RevealedCount: s.revealedCount,
		Cells:         make([][]CellView, s.grid.Rows()),
	}

	for r := 0; r < s.grid.Rows(); r++ {
		snap.Cells[r] = make([]CellView, s.grid.Cols())
		for c := 0; c < s.grid.Cols(); c++ {
			cell, _ := s.grid.At(r, c)
			switch {
			case cell.State == grid.Flagged:
				snap.Cells[r][c] = CellView{Kind: CellFlagged}
			case cell.State == grid.Hidden:
				snap.Cells[r][c] = CellView{Kind: CellHidden}
			case cell.Mine:
				snap.Cells[r][c] = CellView{Kind: CellRevealedMine}
			default:
				snap.Cells[r][c] = CellView{Kind: CellRevealedEmpty, Adjacent: cell.Adjacent}
			}
		}
	}

	return snap
}
