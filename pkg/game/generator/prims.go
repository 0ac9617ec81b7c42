package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// PrimsGenerator carves a perfect maze with randomized Prim's algorithm.
// Rows and Cols count maze cells; the carved grid is (2*Rows+1) x (2*Cols+1)
// tiles with cells on odd coordinates and walls between them.
type PrimsGenerator struct {
	Rows int
	Cols int
}

// cell is a maze cell in cell space (not tile space)
type cell struct {
	r, c int
}

// Name returns the name of this generator
func (g *PrimsGenerator) Name() string {
	return "Prim's"
}

// Size returns the tile dimensions of carved grids
func (g *PrimsGenerator) Size() (rows, cols int) {
	return 2*g.Rows + 1, 2*g.Cols + 1
}

// Carve creates a new occupancy grid for the given seed (true = passable)
func (g *PrimsGenerator) Carve(seed uint64) [][]bool {
	rng := rand.New(rand.NewSource(int64(seed)))

	rows, cols := g.Size()
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return grid
	}

	inMaze := mapset.New[cell]()
	queued := mapset.New[cell]()
	// Frontier order must not depend on map iteration, so it lives in a slice.
	var frontier []cell

	addFrontier := func(from cell) {
		for _, n := range g.neighbors(from) {
			if inMaze.Has(n) || queued.Has(n) {
				continue
			}
			queued.Put(n)
			frontier = append(frontier, n)
		}
	}

	start := cell{rng.Intn(g.Rows), rng.Intn(g.Cols)}
	inMaze.Put(start)
	grid[2*start.r+1][2*start.c+1] = true
	addFrontier(start)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		current := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		var carved []cell
		for _, n := range g.neighbors(current) {
			if inMaze.Has(n) {
				carved = append(carved, n)
			}
		}
		link := carved[rng.Intn(len(carved))]

		grid[2*current.r+1][2*current.c+1] = true
		grid[current.r+link.r+1][current.c+link.c+1] = true
		inMaze.Put(current)
		addFrontier(current)
	}

	return grid
}

// neighbors returns the in-bounds cells adjacent to c in N/E/S/W order
func (g *PrimsGenerator) neighbors(c cell) []cell {
	var out []cell
	if c.r > 0 {
		out = append(out, cell{c.r - 1, c.c})
	}
	if c.c < g.Cols-1 {
		out = append(out, cell{c.r, c.c + 1})
	}
	if c.r < g.Rows-1 {
		out = append(out, cell{c.r + 1, c.c})
	}
	if c.c > 0 {
		out = append(out, cell{c.r, c.c - 1})
	}
	return out
}
