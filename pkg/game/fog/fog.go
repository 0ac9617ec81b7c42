// Package fog hides irregular blobs of tiles from the explorer view.
package fog

import (
	"math"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/seeds"
)

const (
	baseBlobs      = 3
	extraBlobP     = 0.25
	windowRadius   = 3 // 7x7 window
	minInteriorDim = 3
)

// HideProbability is the chance a tile at offset (dh, dw) from a blob
// centre is hidden: sqrt(1 / (|dh| + |dw| + 1)).
func HideProbability(dh, dw int) float64 {
	return math.Sqrt(1 / float64(abs(dh)+abs(dw)+1))
}

// Apply seeds a generator with seed and hides tiles around 3 or 4 random
// interior centres. It only ever clears Visible. It returns the number of
// tiles newly hidden.
func Apply(g *world.Grid, seed uint64) int {
	if g.Rows() < minInteriorDim || g.Cols() < minInteriorDim {
		return 0
	}
	rng := seeds.NewRand(seed)

	blobs := baseBlobs
	if rng.Float64() < extraBlobP {
		blobs++
	}

	hidden := 0
	for b := 0; b < blobs; b++ {
		centre := world.Coordinate{
			Row: 1 + rng.Intn(g.Rows()-2),
			Col: 1 + rng.Intn(g.Cols()-2),
		}
		for dh := -windowRadius; dh <= windowRadius; dh++ {
			for dw := -windowRadius; dw <= windowRadius; dw++ {
				t := g.Tile(world.Coordinate{Row: centre.Row + dh, Col: centre.Col + dw})
				if t == nil {
					continue
				}
				if rng.Float64() < HideProbability(dh, dw) && t.Visible {
					t.Visible = false
					hidden++
				}
			}
		}
	}
	return hidden
}

// Hidden counts fogged tiles
func Hidden(g *world.Grid) int {
	n := 0
	g.ForEachTile(func(_ world.Coordinate, t *world.Tile) {
		if !t.Visible {
			n++
		}
	})
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
