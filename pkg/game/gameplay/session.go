package gameplay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"twinmaze/pkg/engine/input"
	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/state"
)

// Session couples both views over one puzzle for the interactive CLI
type Session struct {
	Puzzle    *state.Puzzle
	Navigator *Navigator
	Explorer  *Explorer

	// ShowMap asks the front end to redraw the explorer map
	ShowMap bool
	// DumpRequested asks the front end to write a debug dump
	DumpRequested bool
	Quit          bool
}

// NewSession starts both views on a puzzle
func NewSession(p *state.Puzzle) *Session {
	return &Session{
		Puzzle:    p,
		Navigator: NewNavigator(p),
		Explorer:  NewExplorer(p),
	}
}

func (s *Session) say(format string, a ...any) {
	s.Navigator.AddMessage(fmt.Sprintf(format, a...))
}

// ProcessIntent applies one high-level intent. Failures become messages;
// only the quit flag ends a session.
func (s *Session) ProcessIntent(intent input.Intent) {
	s.ShowMap, s.DumpRequested = false, false
	nav := s.Navigator

	switch intent.Action {
	case input.ActionNone:
		if len(intent.Args) > 0 {
			s.say("Unknown command %q. Type help.", strings.Join(intent.Args, " "))
		}

	case input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast:
		if err := nav.Move(directionFor(intent.Action)); err != nil {
			s.say("Blocked.")
		}

	case input.ActionAct:
		s.act()

	case input.ActionTeleport:
		code, err := argUint16(intent.Args, 0)
		if err != nil {
			s.say("Usage: t <code>")
			return
		}
		if err := nav.Teleport(code); err != nil {
			s.say("Code %d is not registered.", code)
			return
		}
		s.say("Teleported to %d.", code)

	case input.ActionNextCheckpoint, input.ActionPrevCheckpoint:
		delta := 1
		if intent.Action == input.ActionPrevCheckpoint {
			delta = -1
		}
		nav.CycleCheckpoint(delta)
		if code, ok := nav.Selected(); ok {
			s.say("Selected checkpoint %d.", code)
		} else {
			s.say("Register two checkpoints to choose a destination.")
		}

	case input.ActionSelectMaze:
		n, err := argInt(intent.Args, 0)
		if err != nil || s.Explorer.SelectMaze(n-1) != nil {
			s.say("Usage: m <1-%d>", s.Puzzle.MazeCount())
			return
		}
		s.ShowMap = true

	case input.ActionInspect:
		row, errRow := argInt(intent.Args, 0)
		col, errCol := argInt(intent.Args, 1)
		if errRow != nil || errCol != nil {
			s.say("Usage: i <row> <col>")
			return
		}
		sight, err := s.Explorer.Inspect(row, col)
		if err != nil {
			s.say("No such tile.")
			return
		}
		s.say("%s", describeSight(sight))

	case input.ActionClues:
		set := s.Explorer.Clues()
		for _, m := range set.Marks {
			s.say("%v is %s", m.At, m.Reported)
		}

	case input.ActionReadInfo:
		key, err := argUint16(intent.Args, 0)
		if err != nil {
			s.say("Usage: info <key>")
			return
		}
		text, err := s.Explorer.ReadInfo(key)
		if err != nil {
			s.say("Key %d means nothing.", key)
			return
		}
		s.say("%s", text)

	case input.ActionHint:
		if d, ok := nav.NearestHint(); ok {
			if d < 0 {
				s.say("Nothing reachable.")
			} else {
				s.say("Nearest item: %d steps.", d)
			}
		} else {
			s.say("Stand on a colored tile to sense items.")
		}

	case input.ActionMap:
		s.ShowMap = true

	case input.ActionDump:
		s.DumpRequested = true

	case input.ActionHelp:
		s.say("Move n/s/e/w, act a, teleport t <code>, cycle ] [, map, maze m <n>, inspect i <r> <c>, clues c, info <key>, hint ?, quit q")

	case input.ActionQuit:
		s.Quit = true
	}
}

func (s *Session) act() {
	res, err := s.Navigator.Act()
	switch {
	case errors.Is(err, ErrNothingHere):
		s.say("Nothing here.")
		return
	case err != nil:
		s.say("Error: %v", err)
		return
	}

	switch res.Outcome {
	case OutcomeCollected:
		s.say("Collected %c.", res.Letter)
	case OutcomeRegistered:
		s.say("Checkpoint %d registered.", res.Code)
	case OutcomeTeleported:
		s.say("Teleported to checkpoint %d.", res.Code)
	case OutcomeFell:
		s.say("You fell into chamber %d.", res.To.Maze+1)
	case OutcomeInfo:
		s.say("Info key %d.", res.Key)
	case OutcomeExitPressed:
		s.say("The exit rumbles (%d/%d).", res.Presses, s.Puzzle.Config.ExitPresses)
	case OutcomeEscaped:
		s.say("The exit opens. Well done :)")
		s.Quit = true
	}
}

func describeSight(sight Sight) string {
	if sight.Hidden {
		return "Fog."
	}
	if sight.Kind == world.Wall {
		return "Wall."
	}
	desc := "Passage"
	if sight.Mark != world.ColorNone {
		desc += ", " + sight.Mark.String()
	}
	if sight.Something {
		desc += ", something here"
	}
	return desc + "."
}

func directionFor(a input.Action) world.Direction {
	switch a {
	case input.ActionMoveNorth:
		return world.North
	case input.ActionMoveSouth:
		return world.South
	case input.ActionMoveWest:
		return world.West
	default:
		return world.East
	}
}

func argInt(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	return strconv.Atoi(args[i])
}

func argUint16(args []string, i int) (uint16, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	v, err := strconv.ParseUint(args[i], 10, 16)
	return uint16(v), err
}
