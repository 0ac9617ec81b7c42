package generator

import (
	"testing"
)

// countOpen returns the number of passable tiles.
func countOpen(grid [][]bool) int {
	n := 0
	for _, row := range grid {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// countReachable returns the number of passable tiles reachable from (1,1) via N/E/S/W.
func countReachable(grid [][]bool) int {
	type pt struct{ r, c int }
	visited := map[pt]bool{{1, 1}: true}
	queue := []pt{{1, 1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []pt{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			n := pt{p.r + d.r, p.c + d.c}
			if n.r < 0 || n.r >= len(grid) || n.c < 0 || n.c >= len(grid[0]) {
				continue
			}
			if grid[n.r][n.c] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestPrimsCarve_Dimensions(t *testing.T) {
	g := &PrimsGenerator{Rows: 10, Cols: 15}
	grid := g.Carve(1234)
	if len(grid) != 21 {
		t.Fatalf("rows = %d, want 21", len(grid))
	}
	for r, row := range grid {
		if len(row) != 31 {
			t.Fatalf("row %d has %d cols, want 31", r, len(row))
		}
	}
}

func TestPrimsCarve_BorderWalled(t *testing.T) {
	grid := NewDefault(6, 8).Carve(99)
	last := len(grid) - 1
	for c := range grid[0] {
		if grid[0][c] || grid[last][c] {
			t.Errorf("border column %d is open", c)
		}
	}
	for r := range grid {
		if grid[r][0] || grid[r][len(grid[r])-1] {
			t.Errorf("border row %d is open", r)
		}
	}
}

func TestPrimsCarve_PerfectMaze(t *testing.T) {
	// A perfect maze over R*C cells opens every cell plus R*C-1 walls between them.
	g := &PrimsGenerator{Rows: 7, Cols: 9}
	grid := g.Carve(42)
	cells := 7 * 9
	if got, want := countOpen(grid), 2*cells-1; got != want {
		t.Errorf("open tiles = %d, want %d", got, want)
	}
	if got, want := countReachable(grid), countOpen(grid); got != want {
		t.Errorf("reachable tiles = %d, want %d (isolated passages)", got, want)
	}
}

func TestPrimsCarve_Deterministic(t *testing.T) {
	g := NewDefault(10, 15)
	a := g.Carve(777)
	b := g.Carve(777)
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatalf("tile %d,%d differs between runs with the same seed", r, c)
			}
		}
	}
}

func TestPrimsCarve_SeedsDiffer(t *testing.T) {
	g := NewDefault(10, 15)
	a := g.Carve(1)
	b := g.Carve(2)
	same := true
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				same = false
			}
		}
	}
	if same {
		t.Error("different seeds carved identical mazes")
	}
}
