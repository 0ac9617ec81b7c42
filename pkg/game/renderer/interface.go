// Package renderer defines the front-end contract for drawing a session.
package renderer

import (
	"io"

	"twinmaze/pkg/engine/input"
	"twinmaze/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleAction
	StyleActionShort
	StyleDenied
	StyleItem
	StyleSubtle
	StylePlayer
	StyleExit
	StyleWall
	StyleFog
	StyleMarkCyan
	StyleMarkMagenta
	StyleMarkYellow
)

// View selects which player's screen a frame shows
type View int

const (
	ViewBoth View = iota
	ViewExplorer
	ViewNavigator
)

// ParseView maps a view name to a View
func ParseView(s string) (View, bool) {
	switch s {
	case "both", "":
		return ViewBoth, true
	case "explorer":
		return ViewExplorer, true
	case "navigator":
		return ViewNavigator, true
	}
	return ViewBoth, false
}

// Renderer defines the interface for rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame for the chosen view
	RenderFrame(w io.Writer, s *gameplay.Session, view View)

	// GetInput gets user input and maps it to an intent
	GetInput() (input.Intent, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(w io.Writer, s *gameplay.Session, view View) {
	if Current != nil {
		Current.RenderFrame(w, s, view)
	}
}

// GetInput gets user input from the current renderer
func GetInput() (input.Intent, error) {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{}, nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
