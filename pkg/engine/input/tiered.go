package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Navigator movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Navigator tile actions
	ActionAct            // act on the current tile
	ActionTeleport       // teleport to a registered code (arg: code)
	ActionNextCheckpoint // cycle the selected checkpoint forward
	ActionPrevCheckpoint // cycle the selected checkpoint back

	// Explorer
	ActionSelectMaze // arg: maze number, one-based
	ActionInspect    // args: row col
	ActionClues
	ActionReadInfo // arg: info key

	// Meta / UI
	ActionHint
	ActionMap
	ActionDump
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants
// to do. Args carries the remaining words of a typed command.
type Intent struct {
	Action Action
	Args   []string
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "t 1234").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Terminal raw mode already delivers one event per key, so this only
// normalises case and spacing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps command words to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Tile actions
	"enter":    ActionAct,
	"act":      ActionAct,
	"a":        ActionAct,
	"t":        ActionTeleport,
	"teleport": ActionTeleport,
	"go":       ActionTeleport,
	"]":        ActionNextCheckpoint,
	"next":     ActionNextCheckpoint,
	"[":        ActionPrevCheckpoint,
	"prev":     ActionPrevCheckpoint,

	// Explorer
	"m":       ActionSelectMaze,
	"maze":    ActionSelectMaze,
	"i":       ActionInspect,
	"inspect": ActionInspect,
	"c":       ActionClues,
	"clues":   ActionClues,
	"info":    ActionReadInfo,
	"read":    ActionReadInfo,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,
	"help": ActionHelp,

	// Meta
	"map":  ActionMap,
	"dump": ActionDump,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to the
// first word of a debounced input and returns a high-level Intent carrying
// the remaining words.
func MapToIntent(ev DebouncedInput) Intent {
	fields := strings.Fields(ev.Code)
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}
	if act, ok := bindings[fields[0]]; ok {
		return Intent{Action: act, Args: fields[1:]}
	}
	return Intent{Action: ActionNone, Args: fields}
}

// Parse runs a typed line through every layer
func Parse(device Device, line string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: line, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionAct:
		return "Act"
	case ActionTeleport:
		return "Teleport <code>"
	case ActionNextCheckpoint:
		return "Next Checkpoint"
	case ActionPrevCheckpoint:
		return "Previous Checkpoint"
	case ActionSelectMaze:
		return "Select Maze <n>"
	case ActionInspect:
		return "Inspect <row> <col>"
	case ActionClues:
		return "Clues"
	case ActionReadInfo:
		return "Read Info <key>"
	case ActionHint:
		return "Hint"
	case ActionMap:
		return "Map"
	case ActionDump:
		return "Dump"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and enter stay bound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "enter":
		return true
	}
	return false
}

// Bindings returns a copy of the current code -> action table
func Bindings() map[string]Action {
	out := make(map[string]Action, len(bindings))
	for code, act := range bindings {
		out[code] = act
	}
	return out
}

// SetBindings replaces the whole binding table
func SetBindings(table map[string]Action) {
	bindings = make(map[string]Action, len(table))
	for code, act := range table {
		bindings[code] = act
	}
}
