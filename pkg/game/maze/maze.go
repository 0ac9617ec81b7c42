// Package maze builds one chamber: it carves the grid, places every item
// category in a fixed order and lays the fog.
package maze

import (
	"fmt"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/fog"
	"twinmaze/pkg/game/generator"
	"twinmaze/pkg/game/pits"
	"twinmaze/pkg/game/placement"
	"twinmaze/pkg/game/seeds"
	"twinmaze/pkg/logger"
)

// Params is everything a maze needs from the puzzle that owns it
type Params struct {
	Index      int
	Mazes      int
	Master     uint64
	Letters    []rune
	Codes      []uint16
	InfoKey    uint16
	ColorMarks int
}

// Maze is one built chamber. Shape is fixed after Build; only tile
// occupants change afterwards.
type Maze struct {
	Index   int
	Seed    uint64
	Grid    *world.Grid
	Letters []rune
	// LetterTiles[i] holds Letters[i]
	LetterTiles []world.Coordinate
	Codes       []uint16
	InfoKey     uint16
	InfoTile    world.Coordinate
}

// Build carves and populates maze p.Index. Placement runs colors, letters,
// checkpoints, pits, info hint, each on its own seed; items are written to
// the grid before the next call so later calls see them as occupied. Fog
// runs last.
func Build(provider generator.GridProvider, p Params) (*Maze, error) {
	grid, err := world.FromOccupancy(provider.Carve(seeds.SeedFor(p.Master, p.Index, seeds.Maze)))
	if err != nil {
		return nil, fmt.Errorf("maze %d: %w", p.Index, err)
	}

	m := &Maze{
		Index:   p.Index,
		Seed:    seeds.ForMaze(p.Master, p.Index),
		Grid:    grid,
		Letters: append([]rune(nil), p.Letters...),
		Codes:   append([]uint16(nil), p.Codes...),
		InfoKey: p.InfoKey,
	}

	steps := []struct {
		name string
		run  func(p Params) error
	}{
		{"colors", m.addColors},
		{"letters", m.addLetters},
		{"checkpoints", m.addCheckpoints},
		{"pits", m.addPits},
		{"info hint", m.addInfoHint},
	}
	for _, step := range steps {
		if err := step.run(p); err != nil {
			return nil, fmt.Errorf("maze %d %s: %w", p.Index, step.name, err)
		}
	}

	hidden := fog.Apply(grid, seeds.SeedFor(p.Master, p.Index, seeds.Fog))

	logger.Debug("maze built",
		"index", m.Index,
		"seed", m.Seed,
		"carver", provider.Name(),
		"letters", len(m.Letters),
		"checkpoints", len(m.Codes),
		"pits", p.Mazes-1,
		"fogged", hidden)

	return m, nil
}

func (m *Maze) place(count int, concern seeds.Concern, master uint64) ([]world.Coordinate, *placement.Sampler, error) {
	sampler := placement.NewSampler(seeds.SeedFor(master, m.Index, concern))
	points, err := sampler.Sample(m.Grid, count, placement.NewExclusion())
	return points, sampler, err
}

// addColors paints marks; the palette draws continue the sampler's stream.
// Marks do not occupy tiles.
func (m *Maze) addColors(p Params) error {
	points, sampler, err := m.place(p.ColorMarks, seeds.Colors, p.Master)
	if err != nil {
		return err
	}
	rng := sampler.Rand()
	for _, c := range points {
		m.Grid.Tile(c).Mark = world.MarkColors[rng.Intn(len(world.MarkColors))]
	}
	return nil
}

func (m *Maze) addLetters(p Params) error {
	points, _, err := m.place(len(m.Letters), seeds.Letters, p.Master)
	if err != nil {
		return err
	}
	for i, c := range points {
		m.Grid.Tile(c).Occupant = world.Letter{Char: m.Letters[i]}
	}
	m.LetterTiles = points
	return nil
}

func (m *Maze) addCheckpoints(p Params) error {
	points, _, err := m.place(len(m.Codes), seeds.Checkpoints, p.Master)
	if err != nil {
		return err
	}
	for i, c := range points {
		m.Grid.Tile(c).Occupant = world.Checkpoint{Code: m.Codes[i]}
	}
	return nil
}

func (m *Maze) addPits(p Params) error {
	dests := pits.Destinations(m.Index, p.Mazes)
	points, _, err := m.place(len(dests), seeds.Pits, p.Master)
	if err != nil {
		return err
	}
	for i, c := range points {
		m.Grid.Tile(c).Occupant = world.Pit{Destination: dests[i]}
	}
	return nil
}

func (m *Maze) addInfoHint(p Params) error {
	points, _, err := m.place(1, seeds.InfoHint, p.Master)
	if err != nil {
		return err
	}
	m.InfoTile = points[0]
	m.Grid.Tile(m.InfoTile).Occupant = world.InfoHint{Key: m.InfoKey}
	return nil
}

// PlacedLetters reads the letters back from the grid in placement order.
// Collected letters are skipped.
func (m *Maze) PlacedLetters() []rune {
	out := make([]rune, 0, len(m.LetterTiles))
	for _, c := range m.LetterTiles {
		if l, ok := m.Grid.Tile(c).Occupant.(world.Letter); ok {
			out = append(out, l.Char)
		}
	}
	return out
}

// Capacity returns the number of items the maze must hold
func Capacity(p Params) int {
	return len(p.Letters) + len(p.Codes) + (p.Mazes - 1) + 1
}
