package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"twinmaze/pkg/game/gameplay"
	"twinmaze/pkg/game/renderer"
	"twinmaze/pkg/game/state"
)

func newRenderer(width int) *TUIRenderer {
	t := New()
	t.width = func() int { return width }
	t.Init()
	return t
}

func newSession(t *testing.T) *gameplay.Session {
	t.Helper()
	p, err := state.Generate(1234, state.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return gameplay.NewSession(p)
}

func render(r *TUIRenderer, s *gameplay.Session, view renderer.View) string {
	var buf bytes.Buffer
	r.RenderFrame(&buf, s, view)
	return color.ClearCode(buf.String())
}

func TestRenderFrame_Both(t *testing.T) {
	s := newSession(t)
	out := render(newRenderer(200), s, renderer.ViewBoth)

	for _, want := range []string{
		"Puzzle 1234",
		"> Chamber 1",
		"Chamber 2",
		"Chamber 3",
		"Marks:",
		"Collected: -",
		"Checkpoints: -",
		"(no messages)",
		PlayerIcon,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "> ") {
		t.Errorf("frame does not end with a prompt")
	}
}

func TestRenderFrame_NavigatorOnly(t *testing.T) {
	s := newSession(t)
	out := render(newRenderer(80), s, renderer.ViewNavigator)
	if strings.Contains(out, "Marks:") {
		t.Errorf("navigator view shows the explorer map")
	}
	if !strings.Contains(out, "Collected:") {
		t.Errorf("navigator view missing status")
	}
}

func TestRenderFrame_ExplorerOnly(t *testing.T) {
	s := newSession(t)
	out := render(newRenderer(80), s, renderer.ViewExplorer)
	if strings.Contains(out, "Collected:") {
		t.Errorf("explorer view shows navigator status")
	}
	if got := strings.Count(out, "Marks:"); got != 3 {
		t.Errorf("Marks lines = %d, want 3", got)
	}
}

func TestRenderFrame_KeepsExplorerSelection(t *testing.T) {
	s := newSession(t)
	if err := s.Explorer.SelectMaze(2); err != nil {
		t.Fatalf("SelectMaze: %v", err)
	}
	out := render(newRenderer(200), s, renderer.ViewExplorer)
	if s.Explorer.Maze() != 2 {
		t.Errorf("Explorer.Maze() = %d, want 2", s.Explorer.Maze())
	}
	if !strings.Contains(out, "> Chamber 3") {
		t.Errorf("selected maze not highlighted")
	}
}

func TestRenderFrame_Messages(t *testing.T) {
	s := newSession(t)
	s.Navigator.AddMessage("hello")
	out := render(newRenderer(80), s, renderer.ViewNavigator)
	if !strings.Contains(out, "  hello\n") {
		t.Errorf("message not shown")
	}
}

func TestFormatText(t *testing.T) {
	r := newRenderer(80)

	if got := color.ClearCode(r.FormatText("press ACTION{quit}")); got != "press quit" {
		t.Errorf("FormatText() = %q, want %q", got, "press quit")
	}
	if got := r.FormatText("GT{MARKS}"); got != "MARKS" {
		t.Errorf("FormatText() without catalogue = %q, want %q", got, "MARKS")
	}

	s := newSession(t)
	r.RenderFrame(&bytes.Buffer{}, s, renderer.ViewNavigator)
	if got := r.FormatText("GT{MARKS}"); got != "Marks" {
		t.Errorf("FormatText() = %q, want %q", got, "Marks")
	}
}
