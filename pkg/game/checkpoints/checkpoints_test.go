package checkpoints

import (
	"errors"
	"testing"

	"twinmaze/pkg/engine/world"
)

func TestAllocator_CodesDistinctAcrossMazes(t *testing.T) {
	a := NewAllocator(1234)
	seen := map[uint16]int{}
	for m := 0; m < 5; m++ {
		codes, err := a.Codes(m, 4)
		if err != nil {
			t.Fatalf("Codes(%d): %v", m, err)
		}
		if len(codes) != 4 {
			t.Fatalf("len(Codes(%d)) = %d, want 4", m, len(codes))
		}
		for _, c := range codes {
			if c < CodeMin || c > CodeMax {
				t.Errorf("code %d out of range", c)
			}
			if prev, dup := seen[c]; dup {
				t.Errorf("code %d drawn by mazes %d and %d", c, prev, m)
			}
			seen[c] = m
		}
	}
}

func TestAllocator_Deterministic(t *testing.T) {
	a, b := NewAllocator(77), NewAllocator(77)
	ca, _ := a.Codes(2, 4)
	cb, _ := b.Codes(2, 4)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("code %d: %d != %d", i, ca[i], cb[i])
		}
	}
	ka, _ := a.InfoKey(1)
	kb, _ := b.InfoKey(1)
	if ka != kb {
		t.Errorf("InfoKey(1) = %d and %d for the same seed", ka, kb)
	}
}

func TestAllocator_InfoKeysDistinct(t *testing.T) {
	a := NewAllocator(5)
	seen := map[uint16]bool{}
	for m := 0; m < 10; m++ {
		k, err := a.InfoKey(m)
		if err != nil {
			t.Fatalf("InfoKey(%d): %v", m, err)
		}
		if k < KeyMin || k > KeyMax {
			t.Errorf("key %d out of range", k)
		}
		if seen[k] {
			t.Errorf("key %d repeated", k)
		}
		seen[k] = true
	}
}

func TestAllocator_Exhausted(t *testing.T) {
	a := NewAllocator(1)
	if _, err := a.Codes(3, 3000); !errors.Is(err, ErrSpaceExhausted) {
		t.Errorf("Codes(3, 3000) error = %v, want ErrSpaceExhausted", err)
	}
	if _, err := a.InfoKey(900); !errors.Is(err, ErrSpaceExhausted) {
		t.Errorf("InfoKey(900) error = %v, want ErrSpaceExhausted", err)
	}
}

func TestRegistry_Bijection(t *testing.T) {
	r := NewRegistry()
	entries := map[uint16]world.Position{
		1001: {Maze: 0, Row: 1, Col: 1},
		2002: {Maze: 0, Row: 3, Col: 5},
		3003: {Maze: 1, Row: 1, Col: 1},
	}
	for code, pos := range entries {
		if err := r.Add(code, pos); err != nil {
			t.Fatalf("Add(%d): %v", code, err)
		}
	}
	for code, pos := range entries {
		got, ok := r.Lookup(code)
		if !ok || got != pos {
			t.Errorf("Lookup(%d) = %v, %v; want %v", code, got, ok, pos)
		}
		back, ok := r.CodeAt(got)
		if !ok || back != code {
			t.Errorf("CodeAt(%v) = %d, want %d", got, back, code)
		}
	}
	if err := r.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if _, ok := r.Lookup(4004); ok {
		t.Error("Lookup of unknown code succeeded")
	}
	codes := r.Codes()
	if len(codes) != 3 || codes[0] != 1001 || codes[2] != 3003 {
		t.Errorf("Codes() = %v", codes)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	p := world.Position{Maze: 0, Row: 1, Col: 1}
	if err := r.Add(1500, p); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(1500, world.Position{Maze: 1, Row: 1, Col: 1}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate code error = %v, want ErrDuplicate", err)
	}
	if err := r.Add(1600, p); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate position error = %v, want ErrDuplicate", err)
	}
}

func TestRegistry_AddMaze(t *testing.T) {
	g := world.NewGrid(5, 5)
	for _, c := range []world.Coordinate{{Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}} {
		g.Tile(c).Kind = world.Passage
	}
	g.Tile(world.Coordinate{Row: 1, Col: 1}).Occupant = world.Checkpoint{Code: 1111}
	g.Tile(world.Coordinate{Row: 2, Col: 2}).Occupant = world.Letter{Char: 'x'}
	g.Tile(world.Coordinate{Row: 3, Col: 3}).Occupant = world.Checkpoint{Code: 2222}

	r := NewRegistry()
	if err := r.AddMaze(2, g); err != nil {
		t.Fatalf("AddMaze: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if pos, _ := r.Lookup(2222); pos != (world.Position{Maze: 2, Row: 3, Col: 3}) {
		t.Errorf("Lookup(2222) = %v", pos)
	}
}
