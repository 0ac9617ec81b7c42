// Package tui draws sessions to an ANSI terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"twinmaze/pkg/engine/input"
	"twinmaze/pkg/engine/terminal"
	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/gameplay"
	"twinmaze/pkg/game/hints"
	"twinmaze/pkg/game/renderer"
)

// Icon constants for the maze views
const (
	PlayerIcon     = "@"
	IconWall       = "▒"
	IconFog        = "░"
	IconPassage    = "·"
	IconSomething  = "○"
	IconPit        = "◌"
	IconCheckpoint = "◆"
	IconInfo       = "i"
	IconExit       = "△"
	IconVoid       = " "
)

// mapGap is the spacing between mazes drawn side by side
const mapGap = 3

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorExit        color.Style
	colorWall        color.Style
	colorFog         color.Style
	colorMarks       map[world.Color]color.Style

	catalogue *hints.Catalogue
	width     func() int

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{width: terminal.GetWidth}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorWall = color.Style{color.FgGray}
	t.colorFog = color.Style{color.FgDarkGray}
	t.colorMarks = map[world.Color]color.Style{
		world.ColorCyan:    {color.FgCyan, color.OpBold},
		world.ColorMagenta: {color.FgLightMagenta, color.OpBold},
		world.ColorYellow:  {color.FgYellow, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one command and returns a high-level Intent. Arrow keys
// work when stdin is a terminal.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	var code string
	var err error
	if input.IsTerminal() {
		code, err = input.GetInputWithArrows()
	} else {
		code, err = input.GetInput()
	}
	if err != nil {
		return input.Intent{}, err
	}
	return input.Parse(input.DeviceTerminal, code), nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFog:
		return t.colorFog.Sprint(text)
	case renderer.StyleMarkCyan:
		return t.colorMarks[world.ColorCyan].Sprint(text)
	case renderer.StyleMarkMagenta:
		return t.colorMarks[world.ColorMagenta].Sprint(text)
	case renderer.StyleMarkYellow:
		return t.colorMarks[world.ColorYellow].Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = t.translate(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

func (t *TUIRenderer) translate(msgid string, vars ...any) string {
	if t.catalogue == nil {
		return msgid
	}
	return t.catalogue.Get(msgid, vars...)
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(w io.Writer, s *gameplay.Session, view renderer.View) {
	t.catalogue = s.Puzzle.Catalogue()

	fmt.Fprint(w, t.colorAction.Sprintf("Puzzle %d", s.Puzzle.Seed)+"\n\n")

	if view == renderer.ViewBoth || view == renderer.ViewExplorer {
		t.writeExplorer(w, s)
	}
	if view == renderer.ViewBoth || view == renderer.ViewNavigator {
		t.writeNavigator(w, s)
	}

	t.writeActions(w)
	t.writeMessagesPane(w, s)

	fmt.Fprint(w, "\n> ")
}

// sightIcon renders one tile as the explorer sees it
func (t *TUIRenderer) sightIcon(sight gameplay.Sight) string {
	if sight.Hidden {
		return t.colorFog.Sprint(IconFog)
	}
	if sight.Kind == world.Wall {
		return t.colorWall.Sprint(IconWall)
	}
	icon := IconPassage
	if sight.Something {
		icon = IconSomething
	}
	if style, ok := t.colorMarks[sight.Mark]; ok {
		return style.Sprint(icon)
	}
	if sight.Something {
		return t.colorItem.Sprint(icon)
	}
	return t.colorSubtle.Sprint(icon)
}

// explorerBlock renders one maze as lines of text
func (t *TUIRenderer) explorerBlock(s *gameplay.Session, m int) []string {
	ex := s.Explorer
	prev := ex.Maze()
	if err := ex.SelectMaze(m); err != nil {
		return nil
	}
	defer func() { _ = ex.SelectMaze(prev) }()

	title := t.translate("CHAMBER", m+1)
	if m == prev {
		title = t.colorActionShort.Sprint("> " + title)
	}
	lines := []string{title}

	for r := 0; r < s.Puzzle.Rows(); r++ {
		var line strings.Builder
		for c := 0; c < s.Puzzle.Cols(); c++ {
			sight, err := ex.Inspect(r, c)
			if err != nil {
				line.WriteString(IconVoid)
				continue
			}
			line.WriteString(t.sightIcon(sight))
		}
		lines = append(lines, line.String())
	}

	counts := map[world.Color]int{}
	for _, mark := range ex.Clues().Marks {
		counts[mark.Reported]++
	}
	summary := t.translate("MARKS") + ":"
	for _, c := range world.MarkColors {
		summary += " " + t.colorMarks[c].Sprintf("%s %d", c, counts[c])
	}
	return append(lines, summary)
}

func (t *TUIRenderer) writeExplorer(w io.Writer, s *gameplay.Session) {
	blocks := make([][]string, 0, s.Puzzle.MazeCount())
	for m := 0; m < s.Puzzle.MazeCount(); m++ {
		blocks = append(blocks, t.explorerBlock(s, m))
	}
	for _, line := range terminal.SideBySide(blocks, mapGap, t.width()) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

// tileIcon renders a tile as the navigator sees it
func (t *TUIRenderer) tileIcon(tile world.Tile) string {
	if tile.Kind == world.Wall {
		return t.colorWall.Sprint(IconWall)
	}
	icon := IconPassage
	switch item := tile.Occupant.(type) {
	case world.Letter:
		icon = string(item.Char)
	case world.Checkpoint:
		icon = IconCheckpoint
	case world.Pit:
		icon = IconPit
	case world.InfoHint:
		icon = IconInfo
	}
	if style, ok := t.colorMarks[tile.Mark]; ok {
		return style.Sprint(icon)
	}
	if tile.Occupant != nil {
		return t.colorItem.Sprint(icon)
	}
	return t.colorSubtle.Sprint(icon)
}

// describeTile names what the navigator stands on
func (t *TUIRenderer) describeTile(view gameplay.Neighbourhood) string {
	var parts []string
	switch item := view.Here.Occupant.(type) {
	case world.Letter:
		parts = append(parts, fmt.Sprintf("ITEM{%c}", item.Char))
	case world.Checkpoint:
		parts = append(parts, fmt.Sprintf("ITEM{checkpoint %d}", item.Code))
	case world.Pit:
		parts = append(parts, "ITEM{pit}")
	case world.InfoHint:
		parts = append(parts, fmt.Sprintf("ITEM{info %d}", item.Key))
	}
	if view.Exit {
		parts = append(parts, t.colorExit.Sprint("exit"))
	}
	if view.Here.Mark != world.ColorNone {
		parts = append(parts, t.colorMarks[view.Here.Mark].Sprint(view.Here.Mark.String()))
	}
	if len(parts) == 0 {
		return t.colorSubtle.Sprint("(empty)")
	}
	return t.FormatText("%s", strings.Join(parts, ", "))
}

func (t *TUIRenderer) writeNavigator(w io.Writer, s *gameplay.Session) {
	nav := s.Navigator
	view := nav.Look()
	pos := nav.Position()

	centre := t.colorPlayer.Sprint(PlayerIcon)
	if view.Exit {
		centre = t.colorPlayer.Sprint(IconExit)
	}

	fmt.Fprintf(w, "%s %v\n\n", t.translate("CHAMBER", pos.Maze+1), pos.Coordinate())
	fmt.Fprintf(w, "      %s\n", t.FormatText("ACTION{n}"))
	fmt.Fprintf(w, "       %s\n", t.tileIcon(view.Sides[world.North]))
	fmt.Fprintf(w, "  %s  %s%s%s  %s\n",
		t.FormatText("ACTION{w}"),
		t.tileIcon(view.Sides[world.West]), centre, t.tileIcon(view.Sides[world.East]),
		t.FormatText("ACTION{e}"))
	fmt.Fprintf(w, "       %s\n", t.tileIcon(view.Sides[world.South]))
	fmt.Fprintf(w, "      %s\n\n", t.FormatText("ACTION{s}"))

	fmt.Fprintf(w, "%s\n", t.describeTile(view))
	if d, ok := nav.NearestHint(); ok {
		if d < 0 {
			fmt.Fprintln(w, t.colorSubtle.Sprint(t.translate("NOTHING_REACHABLE")))
		} else {
			fmt.Fprintln(w, t.colorItem.Sprint(t.translate("NEAREST_ITEM", d)))
		}
	}

	fmt.Fprintln(w)
	collected := nav.Collected()
	if collected == "" {
		collected = "-"
	}
	fmt.Fprintln(w, t.colorSubtle.Sprint(t.translate("COLLECTED", collected)))

	codes := []string{}
	selected, hasSelected := nav.Selected()
	for _, code := range nav.Registered() {
		label := fmt.Sprintf("%d", code)
		if hasSelected && code == selected {
			label = t.colorActionShort.Sprintf("[%d]", code)
		}
		codes = append(codes, label)
	}
	if len(codes) == 0 {
		codes = append(codes, "-")
	}
	fmt.Fprintln(w, t.colorSubtle.Sprint(t.translate("REGISTERED", strings.Join(codes, " "))))

	if presses := nav.ExitPresses(); presses > 0 {
		fmt.Fprintln(w, t.colorExit.Sprint(t.translate("EXIT_PRESSES", presses, s.Puzzle.Config.ExitPresses)))
	}
}

// writeActions prints the available actions
func (t *TUIRenderer) writeActions(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprint(w, "- "+t.FormatText("ACTION{act} ACTION{teleport} ACTION{map} ACTION{inspect} ACTION{clues} ACTION{info} ACTION{help} ACTION{quit}")+"\n")
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(w io.Writer, s *gameplay.Session) {
	width := t.width()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	messages := append(append([]string{}, s.Navigator.Messages...), s.Explorer.Messages...)
	if len(messages) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range messages {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	fmt.Fprintln(w, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
