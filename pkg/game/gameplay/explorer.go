package gameplay

import (
	"fmt"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/clues"
	"twinmaze/pkg/game/state"
)

// Sight is a tile as the explorer sees it
type Sight struct {
	Hidden    bool
	Kind      world.TileKind
	Mark      world.Color
	Something bool
}

// Explorer is the first player's session: any maze, any tile, but through
// fog and with the clue set instead of item contents.
type Explorer struct {
	messageLog

	puzzle *state.Puzzle
	maze   int
}

// NewExplorer starts on maze 0
func NewExplorer(p *state.Puzzle) *Explorer {
	return &Explorer{puzzle: p}
}

// Maze returns the selected maze
func (e *Explorer) Maze() int {
	return e.maze
}

// SelectMaze switches the viewed maze
func (e *Explorer) SelectMaze(i int) error {
	if i < 0 || i >= e.puzzle.MazeCount() {
		return fmt.Errorf("maze %d: %w", i, state.ErrLookupMiss)
	}
	e.maze = i
	return nil
}

// Inspect reports a tile of the selected maze. Fogged tiles tell nothing.
// Marks outside the revealed set read blank, and the deceptive mark reads
// its wrong color.
func (e *Explorer) Inspect(row, col int) (Sight, error) {
	pos := world.Position{Maze: e.maze, Row: row, Col: col}
	tile, err := e.puzzle.TileAt(pos)
	if err != nil {
		return Sight{}, err
	}
	if !tile.Visible {
		return Sight{Hidden: true}, nil
	}
	set, err := e.puzzle.Clues(e.maze)
	if err != nil {
		return Sight{}, err
	}
	sight := Sight{
		Kind:      tile.Kind,
		Something: set.HasSomething(pos.Coordinate()),
	}
	if mark, ok := set.MarkAt(pos.Coordinate()); ok {
		sight.Mark = mark.Reported
	}
	return sight, nil
}

// Clues returns the selected maze's clue set
func (e *Explorer) Clues() clues.Set {
	set, _ := e.puzzle.Clues(e.maze)
	return set
}

// ReadInfo resolves an info key the navigator read out
func (e *Explorer) ReadInfo(key uint16) (string, error) {
	return e.puzzle.InfoHint(key)
}

// Locate resolves a checkpoint code to its tile
func (e *Explorer) Locate(code uint16) (world.Position, error) {
	return e.puzzle.CheckpointCoordinate(code)
}
