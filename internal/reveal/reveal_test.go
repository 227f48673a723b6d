package reveal

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweeper/internal/grid"
	"sweeper/internal/minelayer"
)

// buildGrid creates a grid with mines at the given positions and adjacency
// counts already computed.
func buildGrid(t *testing.T, rows, cols int, mines []grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for _, pos := range mines {
		cell, err := g.At(pos.Row, pos.Col)
		require.NoError(t, err)
		cell.Mine = true
	}
	minelayer.ComputeAdjacency(g)
	return g
}

func sortedCoords(coords []grid.Coord) []grid.Coord {
	out := append([]grid.Coord(nil), coords...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func TestReveal_OutOfBounds(t *testing.T) {
	g := buildGrid(t, 3, 3, nil)

	_, err := Reveal(g, -1, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = Reveal(g, 0, 3)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestReveal_NumberedCellRevealsOnlyItself(t *testing.T) {
	g := buildGrid(t, 3, 3, []grid.Coord{{Row: 0, Col: 0}})

	out, err := Reveal(g, 1, 1)
	require.NoError(t, err)
	assert.False(t, out.HitMine)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, out.NewlyRevealed)

	// No cascade: a cell bordering a mine stops the walk.
	corner, _ := g.At(2, 2)
	assert.Equal(t, grid.Hidden, corner.State)
}

func TestReveal_MineHitNoCascade(t *testing.T) {
	g := buildGrid(t, 3, 3, []grid.Coord{{Row: 1, Col: 1}})

	out, err := Reveal(g, 1, 1)
	require.NoError(t, err)
	assert.True(t, out.HitMine)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, out.NewlyRevealed)

	mine, _ := g.At(1, 1)
	assert.Equal(t, grid.Revealed, mine.State)

	// Neighbors stay hidden even though the mine cell has Adjacent == 0.
	for _, pos := range g.Neighbors(1, 1) {
		cell, _ := g.At(pos.Row, pos.Col)
		assert.Equal(t, grid.Hidden, cell.State, "neighbor %v", pos)
	}
}

func TestReveal_AlreadyRevealedIsNoOp(t *testing.T) {
	g := buildGrid(t, 3, 3, []grid.Coord{{Row: 0, Col: 0}})

	_, err := Reveal(g, 2, 2)
	require.NoError(t, err)

	out, err := Reveal(g, 2, 2)
	require.NoError(t, err)
	assert.False(t, out.HitMine)
	assert.Empty(t, out.NewlyRevealed)
}

func TestReveal_FlaggedCellRejected(t *testing.T) {
	g := buildGrid(t, 3, 3, []grid.Coord{{Row: 0, Col: 0}})

	flagged, err := ToggleFlag(g, 2, 2)
	require.NoError(t, err)
	require.True(t, flagged)

	_, err = Reveal(g, 2, 2)
	assert.ErrorIs(t, err, ErrCellFlagged)

	cell, _ := g.At(2, 2)
	assert.Equal(t, grid.Flagged, cell.State, "rejected reveal must not mutate")
}

func TestReveal_CascadeCoversZeroRegionAndBorder(t *testing.T) {
	// 4x4 with a single mine in the corner. Revealing the far corner must
	// uncover every non-mine cell: the zero-adjacency region plus its
	// numbered border.
	mine := grid.Coord{Row: 0, Col: 0}
	g := buildGrid(t, 4, 4, []grid.Coord{mine})

	out, err := Reveal(g, 3, 3)
	require.NoError(t, err)
	assert.False(t, out.HitMine)
	assert.Len(t, out.NewlyRevealed, 15)

	want := make([]grid.Coord, 0, 15)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if (grid.Coord{Row: r, Col: c}) != mine {
				want = append(want, grid.Coord{Row: r, Col: c})
			}
		}
	}
	if diff := cmp.Diff(want, sortedCoords(out.NewlyRevealed)); diff != "" {
		t.Errorf("revealed set mismatch (-want +got):\n%s", diff)
	}

	mineCell, _ := g.At(mine.Row, mine.Col)
	assert.Equal(t, grid.Hidden, mineCell.State, "cascade must never reveal a mine")
}

func TestReveal_CascadeStopsAtNumberedBorder(t *testing.T) {
	// 5x1 strip with a mine at the end:
	//   index:  0  1  2  3  4
	//   cells:  0  0  0  1  *
	// Revealing index 0 uncovers 0..3 and leaves the mine hidden.
	g := buildGrid(t, 1, 5, []grid.Coord{{Row: 0, Col: 4}})

	out, err := Reveal(g, 0, 0)
	require.NoError(t, err)
	assert.Len(t, out.NewlyRevealed, 4)

	mine, _ := g.At(0, 4)
	assert.Equal(t, grid.Hidden, mine.State)
}

func TestReveal_CascadeSkipsFlaggedCells(t *testing.T) {
	// Mine-free grid: a cascade from any cell would cover everything, except
	// cells the player flagged.
	g := buildGrid(t, 3, 3, nil)

	flagged, err := ToggleFlag(g, 0, 2)
	require.NoError(t, err)
	require.True(t, flagged)

	out, err := Reveal(g, 2, 0)
	require.NoError(t, err)
	assert.Len(t, out.NewlyRevealed, 8)

	cell, _ := g.At(0, 2)
	assert.Equal(t, grid.Flagged, cell.State, "cascade must never auto-reveal a flag")
	assert.NotContains(t, out.NewlyRevealed, grid.Coord{Row: 0, Col: 2})
}

func TestReveal_EachCellRevealedOnce(t *testing.T) {
	g := buildGrid(t, 8, 8, []grid.Coord{{Row: 0, Col: 0}})

	out, err := Reveal(g, 7, 7)
	require.NoError(t, err)

	seen := make(map[grid.Coord]bool, len(out.NewlyRevealed))
	for _, pos := range out.NewlyRevealed {
		assert.False(t, seen[pos], "cell %v revealed twice", pos)
		seen[pos] = true
	}
}

func TestToggleFlag(t *testing.T) {
	g := buildGrid(t, 2, 2, []grid.Coord{{Row: 0, Col: 0}})

	flagged, err := ToggleFlag(g, 1, 1)
	require.NoError(t, err)
	assert.True(t, flagged)

	flagged, err = ToggleFlag(g, 1, 1)
	require.NoError(t, err)
	assert.False(t, flagged)

	cell, _ := g.At(1, 1)
	assert.Equal(t, grid.Hidden, cell.State)
}

func TestToggleFlag_RevealedCellRejected(t *testing.T) {
	g := buildGrid(t, 2, 2, []grid.Coord{{Row: 0, Col: 0}})

	_, err := Reveal(g, 1, 1)
	require.NoError(t, err)

	_, err = ToggleFlag(g, 1, 1)
	assert.ErrorIs(t, err, ErrCellAlreadyRevealed)
}

func TestToggleFlag_OutOfBounds(t *testing.T) {
	g := buildGrid(t, 2, 2, nil)

	_, err := ToggleFlag(g, 5, 5)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
