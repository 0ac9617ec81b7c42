// Package setup checks a generated puzzle before it is handed to players.
package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/state"
)

// ErrUnsolvable is returned when the navigator cannot reach every letter
// and the exit from the start
var ErrUnsolvable = errors.New("setup: puzzle not solvable")

// ReachablePositions returns every tile the navigator can stand on starting
// from start, walking passages and falling through pits. Checkpoints only
// teleport between tiles already reached, so they add nothing here.
func ReachablePositions(p *state.Puzzle, start world.Position) mapset.Set[world.Position] {
	reachable := mapset.New[world.Position]()
	if tile, err := p.TileAt(start); err != nil || !tile.IsPassage() {
		return reachable
	}

	pending := queue.New[world.Position]()
	reachable.Put(start)
	pending.Enqueue(start)

	visit := func(pos world.Position) {
		if reachable.Has(pos) {
			return
		}
		tile, err := p.TileAt(pos)
		if err != nil || !tile.IsPassage() {
			return
		}
		reachable.Put(pos)
		pending.Enqueue(pos)
	}

	for !pending.Empty() {
		current := pending.Dequeue()

		for _, d := range world.AllDirections() {
			visit(world.At(current.Maze, d.Step(current.Coordinate())))
		}

		tile, _ := p.TileAt(current)
		if _, ok := tile.Occupant.(world.Pit); ok {
			if to, err := p.PitArrival(current); err == nil {
				visit(to)
			}
		}
	}

	return reachable
}

// CheckSolvability verifies that every letter still on the board and the
// exit can be reached from the start
func CheckSolvability(p *state.Puzzle) error {
	reachable := ReachablePositions(p, p.Start)

	if !reachable.Has(p.Exit) {
		return fmt.Errorf("exit %v unreachable from %v: %w", p.Exit, p.Start, ErrUnsolvable)
	}

	for m := 0; m < p.MazeCount(); m++ {
		tiles, err := p.LetterTiles(m)
		if err != nil {
			return err
		}
		for _, c := range tiles {
			pos := world.At(m, c)
			if !reachable.Has(pos) {
				return fmt.Errorf("letter at %v unreachable: %w", pos, ErrUnsolvable)
			}
		}
	}
	return nil
}
