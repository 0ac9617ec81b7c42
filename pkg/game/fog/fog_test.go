package fog

import (
	"math"
	"testing"

	"twinmaze/pkg/engine/world"
)

func TestHideProbability(t *testing.T) {
	tests := []struct {
		dh, dw int
		want   float64
	}{
		{0, 0, 1},
		{1, 0, 0.7071067811865476},
		{-1, -2, 0.5},
		{3, 3, 0.3779644730092272},
	}
	for _, tt := range tests {
		if got := HideProbability(tt.dh, tt.dw); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("HideProbability(%d, %d) = %v, want %v", tt.dh, tt.dw, got, tt.want)
		}
	}
}

func TestApply_Deterministic(t *testing.T) {
	a := world.NewGrid(21, 31)
	b := world.NewGrid(21, 31)
	Apply(a, 42)
	Apply(b, 42)
	if !a.Equal(b) {
		t.Error("same seed produced different fog")
	}
}

func TestApply_HidesSomething(t *testing.T) {
	g := world.NewGrid(21, 31)
	n := Apply(g, 7)
	if n == 0 {
		t.Fatal("Apply hid no tiles")
	}
	if got := Hidden(g); got != n {
		t.Errorf("Hidden() = %d, want %d", got, n)
	}
	// at most 4 blobs of 49 tiles
	if n > 4*49 {
		t.Errorf("Apply hid %d tiles, more than 4 full windows", n)
	}
}

func TestApply_Monotonic(t *testing.T) {
	g := world.NewGrid(21, 31)
	pre := []world.Coordinate{{Row: 0, Col: 0}, {Row: 10, Col: 15}, {Row: 20, Col: 30}}
	for _, c := range pre {
		g.Tile(c).Visible = false
	}
	Apply(g, 99)
	for _, c := range pre {
		if g.Tile(c).Visible {
			t.Errorf("tile %v revealed by fog", c)
		}
	}

	before := Hidden(g)
	Apply(g, 100)
	if after := Hidden(g); after < before {
		t.Errorf("hidden count dropped from %d to %d", before, after)
	}
}

func TestApply_TinyGridUntouched(t *testing.T) {
	g := world.NewGrid(2, 5)
	if n := Apply(g, 3); n != 0 {
		t.Errorf("Apply on 2x5 hid %d tiles, want 0", n)
	}
}
