package state

import (
	"fmt"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/clues"
	"twinmaze/pkg/game/hints"
	"twinmaze/pkg/game/pits"
)

// MazeCount returns N
func (p *Puzzle) MazeCount() int {
	return len(p.mazes)
}

// Rows returns the tile height shared by every maze
func (p *Puzzle) Rows() int {
	return p.mazes[0].Grid.Rows()
}

// Cols returns the tile width shared by every maze
func (p *Puzzle) Cols() int {
	return p.mazes[0].Grid.Cols()
}

// Catalogue returns the hint language the puzzle was built with
func (p *Puzzle) Catalogue() *hints.Catalogue {
	return p.catalogue
}

func (p *Puzzle) validPosition(pos world.Position) bool {
	return pos.Maze >= 0 && pos.Maze < len(p.mazes) && p.mazes[pos.Maze].Grid.IsValidPosition(pos.Coordinate())
}

// TileAt returns a copy of a tile
func (p *Puzzle) TileAt(pos world.Position) (world.Tile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.validPosition(pos) {
		return world.Tile{}, fmt.Errorf("tile %v: %w", pos, ErrLookupMiss)
	}
	t, _ := p.mazes[pos.Maze].Grid.TileAt(pos.Coordinate())
	return t, nil
}

// ForEachTile visits a maze's tiles in row-major order under the read lock.
// fn receives copies.
func (p *Puzzle) ForEachTile(mazeIndex int, fn func(c world.Coordinate, t world.Tile)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if mazeIndex < 0 || mazeIndex >= len(p.mazes) {
		return fmt.Errorf("maze %d: %w", mazeIndex, ErrLookupMiss)
	}
	p.mazes[mazeIndex].Grid.ForEachTile(func(c world.Coordinate, t *world.Tile) {
		fn(c, *t)
	})
	return nil
}

// CheckpointCoordinate resolves a code to its tile
func (p *Puzzle) CheckpointCoordinate(code uint16) (world.Position, error) {
	pos, ok := p.checkpoints.Lookup(code)
	if !ok {
		return world.Position{}, fmt.Errorf("checkpoint code %d: %w", code, ErrLookupMiss)
	}
	return pos, nil
}

// CheckpointCode returns the code of the checkpoint at pos
func (p *Puzzle) CheckpointCode(pos world.Position) (uint16, error) {
	code, ok := p.checkpoints.CodeAt(pos)
	if !ok {
		return 0, fmt.Errorf("no checkpoint at %v: %w", pos, ErrLookupMiss)
	}
	return code, nil
}

// CheckpointCodes lists every code in ascending order
func (p *Puzzle) CheckpointCodes() []uint16 {
	return p.checkpoints.Codes()
}

// InfoHint returns the text behind an info key
func (p *Puzzle) InfoHint(key uint16) (string, error) {
	text, ok := p.infoTexts[key]
	if !ok {
		return "", fmt.Errorf("info key %d: %w", key, ErrLookupMiss)
	}
	return text, nil
}

// InfoKey returns the info key of a maze
func (p *Puzzle) InfoKey(mazeIndex int) (uint16, error) {
	if mazeIndex < 0 || mazeIndex >= len(p.infoKeys) {
		return 0, fmt.Errorf("maze %d: %w", mazeIndex, ErrLookupMiss)
	}
	return p.infoKeys[mazeIndex], nil
}

// Clues returns the explorer's clue selection for a maze
func (p *Puzzle) Clues(mazeIndex int) (clues.Set, error) {
	if mazeIndex < 0 || mazeIndex >= len(p.clues) {
		return clues.Set{}, fmt.Errorf("maze %d: %w", mazeIndex, ErrLookupMiss)
	}
	return p.clues[mazeIndex], nil
}

// NearestItemPath runs a breadth-first search from pos to the closest tile
// holding any item. The result is not cached here; callers cache it and drop
// the cache when the player moves or an item is collected.
func (p *Puzzle) NearestItemPath(pos world.Position) ([]world.Coordinate, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.validPosition(pos) {
		return nil, false
	}
	return world.NearestItemPath(p.mazes[pos.Maze].Grid, pos.Coordinate())
}

// PitArrival returns where a player standing on the pit at pos lands. The
// landing tile is found by scanning the destination maze for the pit back.
func (p *Puzzle) PitArrival(pos world.Position) (world.Position, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.validPosition(pos) {
		return world.Position{}, fmt.Errorf("tile %v: %w", pos, ErrLookupMiss)
	}
	pit, ok := p.mazes[pos.Maze].Grid.Tile(pos.Coordinate()).Occupant.(world.Pit)
	if !ok {
		return world.Position{}, fmt.Errorf("no pit at %v: %w", pos, ErrLookupMiss)
	}
	at, err := pits.Arrival(p.mazes[pit.Destination].Grid, pos.Maze)
	if err != nil {
		return world.Position{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	return world.At(pit.Destination, at), nil
}

// RemoveLetter clears a letter from its tile and returns it. Only the
// gameplay handler calls it; it is the sole write after assembly.
func (p *Puzzle) RemoveLetter(pos world.Position) (rune, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.validPosition(pos) {
		return 0, fmt.Errorf("tile %v: %w", pos, ErrLookupMiss)
	}
	t := p.mazes[pos.Maze].Grid.Tile(pos.Coordinate())
	letter, ok := t.Occupant.(world.Letter)
	if !ok {
		return 0, fmt.Errorf("no letter at %v: %w", pos, ErrLookupMiss)
	}
	t.Occupant = nil
	return letter.Char, nil
}

// RemainingLetters returns the letters still on the floor, in maze and
// placement order
func (p *Puzzle) RemainingLetters() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []rune
	for _, mz := range p.mazes {
		out = append(out, mz.PlacedLetters()...)
	}
	return string(out)
}

// LetterTiles returns the tiles letters were placed on in maze m, in
// placement order. Collected tiles are included.
func (p *Puzzle) LetterTiles(mazeIndex int) ([]world.Coordinate, error) {
	if mazeIndex < 0 || mazeIndex >= len(p.mazes) {
		return nil, fmt.Errorf("maze %d: %w", mazeIndex, ErrLookupMiss)
	}
	return append([]world.Coordinate(nil), p.mazes[mazeIndex].LetterTiles...), nil
}

// MazeSeed returns the derived seed of a maze
func (p *Puzzle) MazeSeed(mazeIndex int) uint64 {
	return p.mazes[mazeIndex].Seed
}
