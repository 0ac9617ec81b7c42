// Package menu lists and rebinds the command keys.
package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	engineinput "twinmaze/pkg/engine/input"
)

// ErrUnknownAction is returned for a binding whose action name is not known
var ErrUnknownAction = errors.New("menu: unknown action")

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// actionKeys names every rebindable action in config files
var actionKeys = map[string]engineinput.Action{
	"move_north":      engineinput.ActionMoveNorth,
	"move_south":      engineinput.ActionMoveSouth,
	"move_west":       engineinput.ActionMoveWest,
	"move_east":       engineinput.ActionMoveEast,
	"act":             engineinput.ActionAct,
	"teleport":        engineinput.ActionTeleport,
	"next_checkpoint": engineinput.ActionNextCheckpoint,
	"prev_checkpoint": engineinput.ActionPrevCheckpoint,
	"select_maze":     engineinput.ActionSelectMaze,
	"inspect":         engineinput.ActionInspect,
	"clues":           engineinput.ActionClues,
	"read_info":       engineinput.ActionReadInfo,
	"hint":            engineinput.ActionHint,
	"map":             engineinput.ActionMap,
	"dump":            engineinput.ActionDump,
	"help":            engineinput.ActionHelp,
	"quit":            engineinput.ActionQuit,
}

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	byAction := engineinput.GetBindingsByAction()
	codes := byAction[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", name, codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	if b.NonRebindable {
		return ""
	}
	return fmt.Sprintf("Set %q in the bindings section to rebind %s", keyFor(b.Action), engineinput.ActionName(b.Action))
}

// GetMenuItems returns one item per action in command order
func GetMenuItems() []MenuItem {
	actions := make([]engineinput.Action, 0, len(actionKeys))
	for _, act := range actionKeys {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	items := make([]MenuItem, len(actions))
	for i, action := range actions {
		items[i] = &BindingMenuItem{
			Action:        action,
			NonRebindable: isNonRebindable(action),
		}
	}
	return items
}

// HelpLines renders the bindings table, one action per line
func HelpLines() []string {
	items := GetMenuItems()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.GetLabel()
	}
	return lines
}

// Apply rebinds actions from a name -> key map, as read from the config.
// Help and quit cannot be rebound so a session can always be left.
func Apply(overrides map[string]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := actionKeys[name]
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownAction)
		}
		if isNonRebindable(action) {
			return fmt.Errorf("%q cannot be rebound", name)
		}
		engineinput.SetSingleBinding(action, strings.TrimSpace(overrides[name]))
	}
	return nil
}

func keyFor(action engineinput.Action) string {
	for name, act := range actionKeys {
		if act == action {
			return name
		}
	}
	return ""
}

// isNonRebindable checks if an action cannot be rebound.
func isNonRebindable(action engineinput.Action) bool {
	return action == engineinput.ActionHelp ||
		action == engineinput.ActionQuit
}
