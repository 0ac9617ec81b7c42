package world

import "testing"

func TestNearestItemPath_SingleItemAtDistance(t *testing.T) {
	g := gridFromRows(t,
		"#######",
		"#.....#",
		"###.###",
		"#.....#",
		"#######",
	)
	start := Coordinate{1, 1}
	target := Coordinate{3, 5}
	g.Tile(target).Occupant = Checkpoint{Code: 1234}

	path, ok := NearestItemPath(g, start)
	if !ok {
		t.Fatal("NearestItemPath ok = false, want true")
	}
	// 1,1 -> 1,3 (2) -> 3,3 (2) -> 3,5 (2) = 6 steps
	if len(path) != 7 {
		t.Errorf("len(path) = %d, want 7", len(path))
	}
	if path[0] != start || path[len(path)-1] != target {
		t.Errorf("path endpoints = %v..%v, want %v..%v", path[0], path[len(path)-1], start, target)
	}
	for i := 1; i < len(path); i++ {
		if ManhattanDistance(path[i-1], path[i]) != 1 {
			t.Errorf("path step %d jumps from %v to %v", i, path[i-1], path[i])
		}
		if !g.IsPassage(path[i]) {
			t.Errorf("path crosses wall at %v", path[i])
		}
	}
}

func TestNearestItemPath_PicksClosest(t *testing.T) {
	g := gridFromRows(t,
		"#########",
		"#.......#",
		"#########",
	)
	g.Tile(Coordinate{1, 7}).Occupant = Letter{Char: 'x'}
	g.Tile(Coordinate{1, 2}).Occupant = Letter{Char: 'y'}

	path, ok := NearestItemPath(g, Coordinate{1, 4})
	if !ok {
		t.Fatal("NearestItemPath ok = false, want true")
	}
	if got := path[len(path)-1]; got != (Coordinate{1, 2}) {
		t.Errorf("target = %v, want 1,2", got)
	}
	if len(path) != 3 {
		t.Errorf("len(path) = %d, want 3", len(path))
	}
}

func TestNearestItemPath_StartHoldsItem(t *testing.T) {
	g := gridFromRows(t, "###", "#.#", "###")
	g.Tile(Coordinate{1, 1}).Occupant = InfoHint{Key: 101}
	path, ok := NearestItemPath(g, Coordinate{1, 1})
	if !ok || len(path) != 1 {
		t.Errorf("NearestItemPath = %v, %v; want one-tile path", path, ok)
	}
}

func TestNearestItemPath_Unreachable(t *testing.T) {
	g := gridFromRows(t,
		"#####",
		"#.#.#",
		"#####",
	)
	g.Tile(Coordinate{1, 3}).Occupant = Letter{Char: 'z'}
	if path, ok := NearestItemPath(g, Coordinate{1, 1}); ok {
		t.Errorf("NearestItemPath = %v, true; want none (walled off)", path)
	}
}

func TestNearestItemPath_NoItems(t *testing.T) {
	g := gridFromRows(t, "####", "#..#", "####")
	if _, ok := NearestItemPath(g, Coordinate{1, 1}); ok {
		t.Error("NearestItemPath ok = true on empty maze, want false")
	}
}

func TestNearestItemPath_OpenEdges(t *testing.T) {
	// Passages touching the grid edge must not index out of bounds.
	g := gridFromRows(t, "...", "...")
	g.Tile(Coordinate{1, 2}).Occupant = Letter{Char: 'q'}
	path, ok := NearestItemPath(g, Coordinate{0, 0})
	if !ok || len(path) != 4 {
		t.Errorf("NearestItemPath = %v, %v; want 4-tile path", path, ok)
	}
}

func TestNearestItemPath_WallStart(t *testing.T) {
	g := gridFromRows(t, "###", "#.#", "###")
	if _, ok := NearestItemPath(g, Coordinate{0, 0}); ok {
		t.Error("NearestItemPath from a wall ok = true, want false")
	}
}
