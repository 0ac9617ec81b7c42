package state

import (
	"errors"
	"testing"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/config"
	"twinmaze/pkg/game/words"
)

func generate(t *testing.T, seed uint64) *Puzzle {
	t.Helper()
	p, err := Generate(seed, Options{})
	if err != nil {
		t.Fatalf("Generate(%d): %v", seed, err)
	}
	return p
}

func TestGenerate_Scenario1234(t *testing.T) {
	a := generate(t, 1234)
	b := generate(t, 1234)

	if a.MazeCount() != 3 {
		t.Fatalf("MazeCount() = %d, want 3", a.MazeCount())
	}
	if a.Rows() != 21 || a.Cols() != 31 {
		t.Errorf("grid = %dx%d, want 21x31", a.Rows(), a.Cols())
	}
	if a.Start != b.Start {
		t.Errorf("Start = %v and %v", a.Start, b.Start)
	}
	if a.Exit != b.Exit {
		t.Errorf("Exit = %v and %v", a.Exit, b.Exit)
	}
	if a.Word != b.Word {
		t.Errorf("Word differs between runs")
	}

	codesA, codesB := a.CheckpointCodes(), b.CheckpointCodes()
	if len(codesA) != 12 || len(codesA) != len(codesB) {
		t.Fatalf("checkpoint counts = %d and %d, want 12", len(codesA), len(codesB))
	}
	for i, code := range codesA {
		if codesB[i] != code {
			t.Fatalf("code %d = %d and %d", i, code, codesB[i])
		}
		pa, _ := a.CheckpointCoordinate(code)
		pb, _ := b.CheckpointCoordinate(code)
		if pa != pb {
			t.Errorf("code %d at %v and %v", code, pa, pb)
		}
	}

	for m := 0; m < a.MazeCount(); m++ {
		if !a.mazes[m].Grid.Equal(b.mazes[m].Grid) {
			t.Errorf("maze %d differs between runs", m)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := generate(t, 1234)
	b := generate(t, 4321)
	if a.mazes[0].Grid.Equal(b.mazes[0].Grid) {
		t.Error("seeds 1234 and 4321 produced the same first maze")
	}
}

func TestGenerate_RejectsSeedZero(t *testing.T) {
	if _, err := Generate(0, Options{}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Generate(0) error = %v, want ErrConfiguration", err)
	}
}

func TestGenerate_TooSmallGrid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{Rows: 3, Cols: 3}
	cfg.ColorMarksPerMaze, cfg.ColorMarksRevealed = 5, 2
	_, err := Generate(1234, Options{Config: cfg, Words: words.List{"abcdefghijklmnopqrstuvwxyzabcdefghij"}})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Generate on 3x3 cells error = %v, want ErrConfiguration", err)
	}
}

func TestGenerate_UnknownLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "xx"
	if _, err := Generate(5, Options{Config: cfg}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Generate with language xx error = %v, want ErrConfiguration", err)
	}
}

func TestGenerate_LetterReconstruction(t *testing.T) {
	p := generate(t, 987)
	if got := p.RemainingLetters(); got != p.Scrambled.String() {
		t.Errorf("placed letters = %q, want %q", got, p.Scrambled.String())
	}
	if got := words.Recover(p.Scrambled); got != p.Word {
		t.Errorf("Recover = %q, want %q", got, p.Word)
	}
	joined := ""
	for _, part := range p.Parts {
		joined += string(part)
	}
	if joined != p.Scrambled.String() {
		t.Errorf("parts join to %q, want %q", joined, p.Scrambled.String())
	}
	if len(p.Word) < 7 {
		t.Errorf("word %q shorter than 7", p.Word)
	}
}

func TestGenerate_PitCompleteness(t *testing.T) {
	p := generate(t, 31337)
	for m := 0; m < p.MazeCount(); m++ {
		for _, placed := range p.mazes[m].Grid.Items() {
			pit, ok := placed.Item.(world.Pit)
			if !ok {
				continue
			}
			from := world.At(m, placed.At)
			to, err := p.PitArrival(from)
			if err != nil {
				t.Fatalf("PitArrival(%v): %v", from, err)
			}
			if to.Maze != pit.Destination {
				t.Errorf("pit %v landed in maze %d, want %d", from, to.Maze, pit.Destination)
			}
			back, _ := p.TileAt(to)
			if bp, ok := back.Occupant.(world.Pit); !ok || bp.Destination != m {
				t.Errorf("landing tile %v holds %v, want Pit(%d)", to, back.Occupant, m)
			}
		}
	}
}

func TestGenerate_StartExit(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 1234, 99999} {
		p := generate(t, seed)
		if p.Start.Maze == p.Exit.Maze {
			t.Errorf("seed %d: start and exit both in maze %d", seed, p.Start.Maze)
		}
		for _, pos := range []world.Position{p.Start, p.Exit} {
			tile, err := p.TileAt(pos)
			if err != nil {
				t.Fatal(err)
			}
			if !tile.IsFree() {
				t.Errorf("seed %d: %v is not a free passage", seed, pos)
			}
		}
	}
}

func TestGenerate_SingleMaze(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Mazes = 1
	p, err := Generate(42, Options{Config: cfg})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Start.Maze != 0 || p.Exit.Maze != 0 || p.Start == p.Exit {
		t.Errorf("Start = %v, Exit = %v", p.Start, p.Exit)
	}
}

func TestVerify_DetectsBrokenPitGraph(t *testing.T) {
	p := generate(t, 77)
	for _, placed := range p.mazes[1].Grid.Items() {
		if _, ok := placed.Item.(world.Pit); ok {
			p.mazes[1].Grid.Tile(placed.At).Occupant = nil
			break
		}
	}
	if err := p.Verify(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Verify() = %v, want ErrInvariantViolation", err)
	}
}

func TestVerify_DetectsItemOnWall(t *testing.T) {
	p := generate(t, 78)
	p.mazes[0].Grid.Tile(world.Coordinate{Row: 0, Col: 0}).Occupant = world.Letter{Char: 'z'}
	if err := p.Verify(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Verify() = %v, want ErrInvariantViolation", err)
	}
}
