// Package pits links every maze to every other maze.
//
// Maze m holds one pit per other maze d. A pit stores only its destination;
// the landing tile is found at transit time by scanning maze d for the pit
// whose destination is m. For a handful of mazes the scan is cheaper than
// keeping a second index in sync.
package pits

import (
	"errors"
	"fmt"

	"twinmaze/pkg/engine/world"
)

var (
	// ErrNoReturnPit is returned when a destination maze has no pit back
	ErrNoReturnPit = errors.New("pits: no return pit in destination maze")
	// ErrBadGraph is returned when a maze's pits do not cover every other maze exactly once
	ErrBadGraph = errors.New("pits: incomplete link graph")
)

// Destinations returns the pit destinations of maze mazeIndex in maze-index
// order, skipping itself
func Destinations(mazeIndex, mazes int) []int {
	dests := make([]int, 0, mazes)
	for d := 0; d < mazes; d++ {
		if d != mazeIndex {
			dests = append(dests, d)
		}
	}
	return dests
}

// Arrival finds the pit in dest whose destination is origin
func Arrival(dest *world.Grid, origin int) (world.Coordinate, error) {
	for _, placed := range dest.Items() {
		if p, ok := placed.Item.(world.Pit); ok && p.Destination == origin {
			return placed.At, nil
		}
	}
	return world.Coordinate{}, fmt.Errorf("no pit to maze %d: %w", origin, ErrNoReturnPit)
}

// Verify checks that grid i holds exactly one pit to every j != i and none
// to itself or out of range
func Verify(grids []*world.Grid) error {
	for m, g := range grids {
		count := make(map[int]int)
		for _, placed := range g.Items() {
			p, ok := placed.Item.(world.Pit)
			if !ok {
				continue
			}
			if p.Destination == m || p.Destination < 0 || p.Destination >= len(grids) {
				return fmt.Errorf("maze %d: pit at %v leads to %d: %w", m, placed.At, p.Destination, ErrBadGraph)
			}
			count[p.Destination]++
		}
		for _, d := range Destinations(m, len(grids)) {
			if count[d] != 1 {
				return fmt.Errorf("maze %d has %d pits to maze %d: %w", m, count[d], d, ErrBadGraph)
			}
		}
	}
	return nil
}
