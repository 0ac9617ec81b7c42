package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// NearestItemPath runs a breadth-first search over 4-connected passages from
// start and returns the path (start and target inclusive) to the closest tile
// holding any item. The first item tile dequeued is a closest one by step
// count. A start tile that itself holds an item yields a one-tile path.
// The second result is false when no item is reachable or start is not a
// passage.
func NearestItemPath(g *Grid, start Coordinate) ([]Coordinate, bool) {
	if g == nil || !g.IsPassage(start) {
		return nil, false
	}

	visited := mapset.New[Coordinate]()
	visited.Put(start)
	backtrack := map[Coordinate]Coordinate{}

	pending := queue.New[Coordinate]()
	pending.Enqueue(start)

	for !pending.Empty() {
		current := pending.Dequeue()
		if g.Tile(current).Occupant != nil {
			return walkBack(backtrack, start, current), true
		}

		for _, dir := range AllDirections() {
			n := dir.Step(current)
			if visited.Has(n) || !g.IsPassage(n) {
				continue
			}
			visited.Put(n)
			backtrack[n] = current
			pending.Enqueue(n)
		}
	}

	return nil, false
}

// walkBack rebuilds the start->target path from the predecessor map
func walkBack(backtrack map[Coordinate]Coordinate, start, target Coordinate) []Coordinate {
	var reversed []Coordinate
	for c := target; c != start; c = backtrack[c] {
		reversed = append(reversed, c)
	}
	reversed = append(reversed, start)

	path := make([]Coordinate, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}
