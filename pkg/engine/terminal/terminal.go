// Package terminal reports the terminal size and lays text out within it.
package terminal

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// VisibleWidth returns the printed width of s, ignoring color codes.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}

// BlocksPerRow returns how many blocks of blockWidth fit side by side in
// width with gap columns between them. At least one block always fits.
func BlocksPerRow(width, blockWidth, gap int) int {
	if blockWidth <= 0 {
		return 1
	}
	n := (width + gap) / (blockWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}

// SideBySide lays text blocks out left to right, wrapping to a new band
// when the next block would overflow width. Short blocks are padded so
// columns stay aligned.
func SideBySide(blocks [][]string, gap, width int) []string {
	blockWidth := 0
	for _, b := range blocks {
		for _, line := range b {
			if w := VisibleWidth(line); w > blockWidth {
				blockWidth = w
			}
		}
	}
	perRow := BlocksPerRow(width, blockWidth, gap)
	spacer := strings.Repeat(" ", gap)

	var out []string
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		band := blocks[start:end]
		height := 0
		for _, b := range band {
			height = max(height, len(b))
		}
		if start > 0 {
			out = append(out, "")
		}
		for row := 0; row < height; row++ {
			var line strings.Builder
			for i, b := range band {
				if i > 0 {
					line.WriteString(spacer)
				}
				cell := ""
				if row < len(b) {
					cell = b[row]
				}
				line.WriteString(cell)
				if i < len(band)-1 {
					line.WriteString(strings.Repeat(" ", blockWidth-VisibleWidth(cell)))
				}
			}
			out = append(out, line.String())
		}
	}
	return out
}

// IsTerminal reports whether stdout is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
