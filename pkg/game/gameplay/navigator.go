package gameplay

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/state"
	"twinmaze/pkg/logger"
)

var (
	// ErrBlocked is returned when a move targets a wall or leaves the grid
	ErrBlocked = errors.New("gameplay: way blocked")
	// ErrNothingHere is returned when acting on an empty tile
	ErrNothingHere = errors.New("gameplay: nothing here")
	// ErrNotRegistered is returned when teleporting to a code not yet
	// visited. It is also a state.ErrLookupMiss.
	ErrNotRegistered = fmt.Errorf("gameplay: checkpoint not registered: %w", state.ErrLookupMiss)
)

// Outcome tells what an action did
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCollected
	OutcomeRegistered
	OutcomeTeleported
	OutcomeFell
	OutcomeInfo
	OutcomeExitPressed
	OutcomeEscaped
)

// Result describes one Act
type Result struct {
	Outcome Outcome
	Letter  rune
	Code    uint16
	Key     uint16
	To      world.Position
	Presses int
}

// Navigator is the second player's session: one position, local view only.
// It is the single writer of tile occupants.
type Navigator struct {
	messageLog

	puzzle     *state.Puzzle
	pos        world.Position
	registered []uint16
	known      mapset.Set[uint16]
	selected   int
	collected  []rune
	presses    int

	nearest      int
	nearestValid bool
}

// NewNavigator places a navigator on the puzzle's start tile
func NewNavigator(p *state.Puzzle) *Navigator {
	return &Navigator{
		puzzle: p,
		pos:    p.Start,
		known:  mapset.New[uint16](),
	}
}

// Position returns where the navigator stands
func (n *Navigator) Position() world.Position {
	return n.pos
}

func (n *Navigator) moveTo(pos world.Position) {
	n.pos = pos
	n.nearestValid = false
}

// Move steps to the adjacent passage in direction d. Any move resets the
// exit press count.
func (n *Navigator) Move(d world.Direction) error {
	n.presses = 0
	target := world.At(n.pos.Maze, d.Step(n.pos.Coordinate()))
	tile, err := n.puzzle.TileAt(target)
	if err != nil || !tile.IsPassage() {
		return fmt.Errorf("%s from %v: %w", d, n.pos, ErrBlocked)
	}
	n.moveTo(target)
	return nil
}

// Act uses the current tile. On the exit every press counts; anything else
// resets the count.
func (n *Navigator) Act() (Result, error) {
	if n.pos == n.puzzle.Exit {
		n.presses++
		if n.Escaped() {
			logger.Info("navigator escaped", "seed", n.puzzle.Seed, "letters", len(n.collected))
			return Result{Outcome: OutcomeEscaped, Presses: n.presses}, nil
		}
		return Result{Outcome: OutcomeExitPressed, Presses: n.presses}, nil
	}
	n.presses = 0

	tile, err := n.puzzle.TileAt(n.pos)
	if err != nil {
		return Result{}, err
	}

	switch item := tile.Occupant.(type) {
	case nil:
		return Result{}, fmt.Errorf("%v: %w", n.pos, ErrNothingHere)
	case world.Pit:
		to, err := n.puzzle.PitArrival(n.pos)
		if err != nil {
			return Result{}, err
		}
		n.moveTo(to)
		return Result{Outcome: OutcomeFell, To: to}, nil
	case world.Checkpoint:
		return n.useCheckpoint(item.Code)
	case world.Letter:
		r, err := n.puzzle.RemoveLetter(n.pos)
		if err != nil {
			return Result{}, err
		}
		n.collected = append(n.collected, r)
		n.nearestValid = false
		return Result{Outcome: OutcomeCollected, Letter: r}, nil
	case world.InfoHint:
		return Result{Outcome: OutcomeInfo, Key: item.Key}, nil
	default:
		return Result{}, fmt.Errorf("%v holds %v: %w", n.pos, item, state.ErrInvariantViolation)
	}
}

// useCheckpoint registers a new code, or on a known one teleports to the
// selected registered checkpoint
func (n *Navigator) useCheckpoint(code uint16) (Result, error) {
	if !n.known.Has(code) {
		n.known.Put(code)
		n.registered = append(n.registered, code)
		return Result{Outcome: OutcomeRegistered, Code: code}, nil
	}
	if len(n.registered) < 2 {
		return Result{Outcome: OutcomeRegistered, Code: code}, nil
	}
	target := n.registered[n.selected]
	if err := n.Teleport(target); err != nil {
		return Result{}, err
	}
	return Result{Outcome: OutcomeTeleported, Code: target, To: n.pos}, nil
}

// Teleport jumps to a registered checkpoint by code
func (n *Navigator) Teleport(code uint16) error {
	if !n.known.Has(code) {
		return fmt.Errorf("code %d: %w", code, ErrNotRegistered)
	}
	pos, err := n.puzzle.CheckpointCoordinate(code)
	if err != nil {
		return err
	}
	n.presses = 0
	if pos != n.pos {
		n.moveTo(pos)
	}
	return nil
}

// Registered returns the visited checkpoint codes in visit order
func (n *Navigator) Registered() []uint16 {
	return append([]uint16(nil), n.registered...)
}

// Selected returns the checkpoint a known checkpoint would teleport to
func (n *Navigator) Selected() (uint16, bool) {
	if len(n.registered) < 2 {
		return 0, false
	}
	return n.registered[n.selected], true
}

// CycleCheckpoint moves the selection by delta, wrapping
func (n *Navigator) CycleCheckpoint(delta int) {
	if len(n.registered) < 2 {
		return
	}
	k := len(n.registered)
	n.selected = ((n.selected+delta)%k + k) % k
}

// SelectCheckpoint selects a registered code
func (n *Navigator) SelectCheckpoint(code uint16) error {
	for i, c := range n.registered {
		if c == code {
			n.selected = i
			return nil
		}
	}
	return fmt.Errorf("code %d: %w", code, ErrNotRegistered)
}

// Collected returns the letters picked up so far, in order
func (n *Navigator) Collected() string {
	return string(n.collected)
}

// ExitPresses returns the current run of consecutive presses on the exit
func (n *Navigator) ExitPresses() int {
	return n.presses
}

// Escaped reports whether the exit has been opened
func (n *Navigator) Escaped() bool {
	return n.presses >= n.puzzle.Config.ExitPresses
}

// NearestItemDistance returns the step count to the closest item, or -1 when
// none is reachable. The search reruns only after a move or a collection.
func (n *Navigator) NearestItemDistance() int {
	if !n.nearestValid {
		n.nearest = -1
		if path, ok := n.puzzle.NearestItemPath(n.pos); ok {
			n.nearest = len(path) - 1
		}
		n.nearestValid = true
	}
	return n.nearest
}

// NearestHint is the distance as shown to the player: only while standing on
// a color mark
func (n *Navigator) NearestHint() (int, bool) {
	tile, err := n.puzzle.TileAt(n.pos)
	if err != nil || tile.Mark == world.ColorNone {
		return 0, false
	}
	return n.NearestItemDistance(), true
}

// Neighbourhood is the navigator's local view
type Neighbourhood struct {
	Here  world.Tile
	Exit  bool
	Sides map[world.Direction]world.Tile
}

// Look returns the current tile and its four neighbours. Off-grid sides read
// as walls.
func (n *Navigator) Look() Neighbourhood {
	here, _ := n.puzzle.TileAt(n.pos)
	view := Neighbourhood{
		Here:  here,
		Exit:  n.pos == n.puzzle.Exit,
		Sides: make(map[world.Direction]world.Tile, 4),
	}
	for _, d := range world.AllDirections() {
		t, err := n.puzzle.TileAt(world.At(n.pos.Maze, d.Step(n.pos.Coordinate())))
		if err != nil {
			t = world.Tile{Kind: world.Wall}
		}
		view.Sides[d] = t
	}
	return view
}
