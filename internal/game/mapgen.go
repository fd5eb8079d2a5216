/*
Package game
File: mapgen.go
Description:
    Procedural surface generation. Builds the static tile grid, the lander
    site, and per-tile science richness from a mission seed.

    Generate is a pure function: the same seed always yields a bit-for-bit
    identical grid. Every step consumes the same seeded stream in a fixed
    order, so the draw ordering below is part of the contract.
*/

package game

import (
	"math"
	"math/rand/v2"
)

// Generation tuning. These ranges shape the landing region and are part of
// the deterministic contract, so they stay compile-time.
const (
	craterClustersMin = 3 // 3-5 crater clusters
	craterClustersMax = 5
	psrCountMin       = 18 // 18-25 shadowed cells
	psrCountMax       = 25
	roughPlacements   = 40 // slope/boulder scatter attempts
	psrBiasChance     = 0.4
)

// Generate builds the surface map for the given seed and returns it together
// with the lander position (always the grid center).
func Generate(seed int64) (Grid, Position) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|3)))

	var g Grid
	lander := Position{Row: GridSize / 2, Col: GridSize / 2}

	// 1. Flat regolith everywhere, lander at the center.
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			g[r][c] = Tile{Type: TileNormal}
		}
	}
	g[lander.Row][lander.Col] = Tile{Type: TileLander, Science: 1}

	// 2. Carve crater clusters: floor within radius-0.5, rim ring outside it.
	clusters := craterClustersMin + rng.IntN(craterClustersMax-craterClustersMin+1)
	for i := 0; i < clusters; i++ {
		cr := rng.IntN(GridSize)
		cc := rng.IntN(GridSize)
		radius := float64(1 + rng.IntN(2))

		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				if g[r][c].Type == TileLander {
					continue
				}
				d := math.Hypot(float64(r-cr), float64(c-cc))
				if d <= radius-0.5 {
					g[r][c].Type = TileCrater
				} else if d <= radius+0.5 {
					g[r][c].Type = TileRim
				}
			}
		}
	}

	// 3. Scatter PSR cells, biased toward the top rows and rightmost
	// (bottom-of-map) columns to cluster shadow in specific quadrants.
	psrCount := psrCountMin + rng.IntN(psrCountMax-psrCountMin+1)
	for i := 0; i < psrCount; i++ {
		r := rng.IntN(GridSize)
		c := rng.IntN(GridSize)
		if rng.Float64() < psrBiasChance {
			r = rng.IntN(GridSize / 3)
		}
		if rng.Float64() < psrBiasChance {
			c = GridSize - 1 - rng.IntN(GridSize/3)
		}
		if g[r][c].Type == TileLander {
			continue // never shadow the landing site; no re-roll
		}
		g[r][c].Type = TilePSR
	}

	// 4. Rough terrain: fixed number of placements, only onto untouched cells.
	for i := 0; i < roughPlacements; i++ {
		r := rng.IntN(GridSize)
		c := rng.IntN(GridSize)
		if g[r][c].Type != TileNormal {
			continue
		}
		if rng.IntN(2) == 0 {
			g[r][c].Type = TileSlope
		} else {
			g[r][c].Type = TileBoulder
		}
	}

	// 5. Science scoring. Rim +2, Crater +1, +2 per orthogonal PSR neighbor.
	// PSR cells themselves hold no score. The lander is skipped entirely and
	// keeps its fixed 1, even when a PSR lands next to it, so the landing
	// site scores the same on every seed.
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			switch g[r][c].Type {
			case TilePSR, TileLander:
				continue
			case TileRim:
				g[r][c].Science += 2
			case TileCrater:
				g[r][c].Science += 1
			}
			g[r][c].Science += 2 * psrNeighbors(&g, r, c)
		}
	}

	return g, lander
}

// psrNeighbors counts orthogonally adjacent PSR cells.
func psrNeighbors(g *Grid, row, col int) int {
	n := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
			continue
		}
		if g[r][c].Type == TilePSR {
			n++
		}
	}
	return n
}

// InBounds reports whether a position lies on the grid.
func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// NearPSR reports whether the position is a PSR cell or orthogonally
// adjacent to one. Used for resource potential scoring and the PSR_EDGE
// objective.
func NearPSR(g *Grid, p Position) bool {
	if g[p.Row][p.Col].Type == TilePSR {
		return true
	}
	return psrNeighbors(g, p.Row, p.Col) > 0
}
