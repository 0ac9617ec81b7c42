// Package clues picks what the explorer is told about a maze: a handful of
// color marks, exactly one of them reported wrong, and a handful of tiles
// flagged as holding something.
package clues

import (
	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/seeds"
)

// Mark is a revealed floor mark as reported to the explorer
type Mark struct {
	At       world.Coordinate
	Reported world.Color
	Actual   world.Color
}

// Deceptive reports whether the mark is reported wrong
func (m Mark) Deceptive() bool {
	return m.Reported != m.Actual
}

// Set is the clue selection of one maze
type Set struct {
	Marks []Mark
	// DeceptiveIndex indexes Marks; -1 when no marks are shown
	DeceptiveIndex int
	Somethings     []world.Coordinate
}

// Select derives the clues of g from seed. Marks are gathered row-major and
// shuffled, the first marksShown are revealed and one of them is shifted to
// the next color. Item tiles are then shuffled on the same generator and the
// first somethingsShown are revealed.
func Select(g *world.Grid, seed uint64, marksShown, somethingsShown int) Set {
	rng := seeds.NewRand(seed)

	marks := g.Marks()
	rng.Shuffle(len(marks), func(i, j int) { marks[i], marks[j] = marks[j], marks[i] })
	marks = marks[:min(marksShown, len(marks))]

	set := Set{DeceptiveIndex: -1}
	if len(marks) > 0 {
		set.DeceptiveIndex = rng.Intn(len(marks))
	}
	for i, c := range marks {
		actual := g.Tile(c).Mark
		reported := actual
		if i == set.DeceptiveIndex {
			reported = actual.Next()
		}
		set.Marks = append(set.Marks, Mark{At: c, Reported: reported, Actual: actual})
	}

	items := g.Items()
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	for _, placed := range items[:min(somethingsShown, len(items))] {
		set.Somethings = append(set.Somethings, placed.At)
	}

	return set
}

// MarkAt returns the revealed mark at c
func (s Set) MarkAt(c world.Coordinate) (Mark, bool) {
	for _, m := range s.Marks {
		if m.At == c {
			return m, true
		}
	}
	return Mark{}, false
}

// HasSomething reports whether c is flagged as holding an item
func (s Set) HasSomething(c world.Coordinate) bool {
	for _, at := range s.Somethings {
		if at == c {
			return true
		}
	}
	return false
}
