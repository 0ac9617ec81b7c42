package placement

import (
	"errors"
	"testing"

	"twinmaze/pkg/engine/world"
)

// openGrid returns a rows x cols grid whose interior is all passage.
func openGrid(t *testing.T, rows, cols int) *world.Grid {
	t.Helper()
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = r > 0 && r < rows-1 && c > 0 && c < cols-1
		}
	}
	g, err := world.FromOccupancy(cells)
	if err != nil {
		t.Fatalf("FromOccupancy: %v", err)
	}
	return g
}

func TestPlace_DistinctInteriorPassages(t *testing.T) {
	g := openGrid(t, 8, 9)
	points, err := Place(g, 20, 77, NewExclusion())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(points) != 20 {
		t.Fatalf("len(points) = %d, want 20", len(points))
	}
	seen := map[world.Coordinate]bool{}
	for _, p := range points {
		if seen[p] {
			t.Errorf("duplicate point %v", p)
		}
		seen[p] = true
		if !g.IsPlayablePosition(p) || !g.IsPassage(p) {
			t.Errorf("point %v is not an interior passage", p)
		}
	}
}

func TestPlace_SkipsOccupiedAndExcluded(t *testing.T) {
	g := openGrid(t, 4, 6) // interior: row 1-2, col 1-4 = 8 tiles
	occupied := world.Coordinate{Row: 1, Col: 1}
	g.Tile(occupied).Occupant = world.Letter{Char: 'a'}
	exclude := NewExclusion()
	exclude.Put(world.Coordinate{Row: 2, Col: 4})

	points, err := Place(g, 6, 3, exclude)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	for _, p := range points {
		if p == occupied {
			t.Errorf("placed on occupied tile %v", p)
		}
		if exclude.Has(p) {
			t.Errorf("placed on excluded tile %v", p)
		}
	}
}

func TestPlace_Deterministic(t *testing.T) {
	g := openGrid(t, 10, 10)
	a, _ := Place(g, 12, 555, NewExclusion())
	b, _ := Place(g, 12, 555, NewExclusion())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestPlace_TooManyIsConfigurationError(t *testing.T) {
	g := openGrid(t, 4, 4) // 4 interior tiles
	_, err := Place(g, 5, 1, NewExclusion())
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Place(5 of 4) error = %v, want ErrConfiguration", err)
	}
}

func TestPlace_ExactFill(t *testing.T) {
	g := openGrid(t, 4, 4)
	points, err := Place(g, 4, 9, NewExclusion())
	if err != nil {
		t.Fatalf("Place(4 of 4): %v", err)
	}
	if len(points) != 4 {
		t.Errorf("len(points) = %d, want 4", len(points))
	}
}

func TestPlace_NoInterior(t *testing.T) {
	g := world.NewGrid(2, 2)
	if _, err := Place(g, 1, 1, NewExclusion()); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Place on 2x2 error = %v, want ErrConfiguration", err)
	}
}

func TestPlace_ZeroCount(t *testing.T) {
	g := openGrid(t, 5, 5)
	points, err := Place(g, 0, 1, NewExclusion())
	if err != nil || len(points) != 0 {
		t.Errorf("Place(0) = %v, %v; want empty, nil", points, err)
	}
}

func TestSampler_RandContinuesStream(t *testing.T) {
	g := openGrid(t, 6, 6)
	a := NewSampler(10)
	b := NewSampler(10)
	if _, err := a.Sample(g, 3, NewExclusion()); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Sample(g, 3, NewExclusion()); err != nil {
		t.Fatal(err)
	}
	if a.Rand().Intn(1000) != b.Rand().Intn(1000) {
		t.Error("samplers with the same seed diverged after sampling")
	}
}
