package ui

import (
	"fmt"
	"strings"

	"sweeper/internal/game"
	"sweeper/internal/position"
)

// Board cell glyphs, matching the classic text layout: hidden cells are
// question marks, flags F, mines X, and empty revealed cells a blank.
const (
	glyphHidden = "?"
	glyphFlag   = "F"
	glyphMine   = "X"
	glyphZero   = " "
)

// RenderBoard renders a board snapshot as styled text. Columns are labeled
// A, B, C, ... and rows are numbered from 1, the coordinates the player
// types back in.
func RenderBoard(s Styles, snap game.Snapshot) string {
	labelWidth := 1
	if snap.Rows >= 10 {
		labelWidth = 2
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	cols := make([]string, snap.Cols)
	for c := 0; c < snap.Cols; c++ {
		cols[c] = position.ColumnLabel(c)
	}
	sb.WriteString(s.ColLabel.Render(strings.Join(cols, " ")))
	sb.WriteString("\n")

	for r := 0; r < snap.Rows; r++ {
		sb.WriteString(s.RowLabel.Render(fmt.Sprintf("%*d", labelWidth, r+1)))
		for c := 0; c < snap.Cols; c++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(s, snap.Cells[r][c]))
		}
		if r < snap.Rows-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func renderCell(s Styles, view game.CellView) string {
	switch view.Kind {
	case game.CellFlagged:
		return s.CellFlag.Render(glyphFlag)
	case game.CellRevealedMine:
		return s.CellMine.Render(glyphMine)
	case game.CellRevealedEmpty:
		if view.Adjacent == 0 {
			return s.CellZero.Render(glyphZero)
		}
		return s.Digits[view.Adjacent].Render(fmt.Sprintf("%d", view.Adjacent))
	default:
		return s.CellHidden.Render(glyphHidden)
	}
}

// StatusLine renders the one-line game summary shown above the board.
func StatusLine(s Styles, snap game.Snapshot) string {
	var state string
	switch snap.Status {
	case game.StatusWon:
		state = s.Success.Render("won")
	case game.StatusLost:
		state = s.Error.Render("lost")
	case game.StatusEnded:
		state = s.Muted.Render("ended")
	default:
		state = s.Info.Render("in progress")
	}

	return fmt.Sprintf("%s  %s  %s",
		s.Bold.Render(fmt.Sprintf("%dx%d", snap.Rows, snap.Cols)),
		s.Muted.Render(fmt.Sprintf("mines %d · flags %d", snap.MineCount, snap.FlagCount)),
		state,
	)
}
