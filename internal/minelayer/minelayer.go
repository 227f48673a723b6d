// Package minelayer places mines on a grid and computes adjacency counts.
//
// Randomness is injected as a *rand.Rand so placement is reproducible in
// tests; production callers derive the seed from crypto/rand via NewSeed.
package minelayer

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"sweeper/internal/grid"
)

// ErrTooManyMines indicates the requested mine count is outside the valid
// range: at least one mine, and no more than the cells available after the
// first-move exclusion has been degraded as far as policy allows.
var ErrTooManyMines = errors.New("mine count must be between 1 and the number of non-excluded cells")

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SafeZone returns the 3x3 block centered on the first-move cell, clipped to
// the grid bounds. Cells in the zone are guaranteed mine-free.
func SafeZone(g *grid.Grid, first grid.Coord) []grid.Coord {
	zone := make([]grid.Coord, 0, 9)
	if g.InBounds(first.Row, first.Col) {
		zone = append(zone, first)
	}
	return append(zone, g.Neighbors(first.Row, first.Col)...)
}

// Place marks mineCount distinct cells as mines, sampled uniformly from the
// grid minus the safe zone around the first-move cell. When the full 3x3
// zone would leave too few cells, the zone shrinks to the first-move cell
// alone: a game never fails to start solely due to first-move safety.
func Place(g *grid.Grid, mineCount int, first grid.Coord, rng *rand.Rand) error {
	if mineCount <= 0 {
		return ErrTooManyMines
	}

	zone := SafeZone(g, first)
	if g.Size()-len(zone) < mineCount {
		zone = zone[:0]
		if g.InBounds(first.Row, first.Col) {
			zone = append(zone, first)
		}
	}
	if g.Size()-len(zone) < mineCount {
		return ErrTooManyMines
	}

	excluded := make(map[grid.Coord]bool, len(zone))
	for _, pos := range zone {
		excluded[pos] = true
	}

	candidates := make([]grid.Coord, 0, g.Size()-len(zone))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if pos := (grid.Coord{Row: r, Col: c}); !excluded[pos] {
				candidates = append(candidates, pos)
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, pos := range candidates[:mineCount] {
		cell, err := g.At(pos.Row, pos.Col)
		if err != nil {
			return err
		}
		cell.Mine = true
	}

	return nil
}

// ComputeAdjacency sets Adjacent on every non-mine cell to the number of
// mines among its neighbors. It is a pure function of mine placement.
func ComputeAdjacency(g *grid.Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, _ := g.At(r, c)
			if cell.Mine {
				continue
			}
			count := 0
			for _, n := range g.Neighbors(r, c) {
				neighbor, _ := g.At(n.Row, n.Col)
				if neighbor.Mine {
					count++
				}
			}
			cell.Adjacent = count
		}
	}
}
