package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/gameplay"
)

// SaveScreenshotHTML saves the explorer's view of every maze, the navigator
// position and both message logs as an HTML file in dir
func SaveScreenshotHTML(s *gameplay.Session, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(RenderHTML(s)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// RenderHTML builds the screenshot document
func RenderHTML(s *gameplay.Session) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Twin Maze - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 20px 20px 0;
            vertical-align: top;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .fog { color: #333; }
        .something { color: #bb86fc; font-weight: bold; }
        .mark-cyan { color: #00ffff; }
        .mark-magenta { color: #ff66ff; }
        .mark-yellow { color: #ffff00; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	p := s.Puzzle
	player := s.Navigator.Position()
	b.WriteString(fmt.Sprintf(`    <div class="header">Puzzle %d</div>`+"\n", p.Seed))

	for m := 0; m < p.MazeCount(); m++ {
		b.WriteString(`    <div class="map-container">` + "\n")
		b.WriteString(fmt.Sprintf(`        <div class="header">Maze %d</div>`+"\n", m+1))
		sights := explorerView(s, m)
		for r, row := range sights {
			b.WriteString(`        <div class="map-row">`)
			for c, sight := range row {
				icon, class := sightHTMLInfo(sight)
				if player.Maze == m && player.Row == r && player.Col == c {
					icon, class = "@", "player"
				}
				b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString(`    </div>` + "\n")
	}

	messages := append(append([]string{}, s.Navigator.Messages...), s.Explorer.Messages...)
	if len(messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range messages {
			b.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(stripANSI(msg))))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// explorerView inspects every tile of maze m through the explorer
func explorerView(s *gameplay.Session, m int) [][]gameplay.Sight {
	p := s.Puzzle
	rows := make([][]gameplay.Sight, p.Rows())
	for r := range rows {
		rows[r] = make([]gameplay.Sight, p.Cols())
	}
	prev := s.Explorer.Maze()
	if err := s.Explorer.SelectMaze(m); err != nil {
		return rows
	}
	defer func() { _ = s.Explorer.SelectMaze(prev) }()
	for r := range rows {
		for c := range rows[r] {
			rows[r][c], _ = s.Explorer.Inspect(r, c)
		}
	}
	return rows
}

// sightHTMLInfo returns the icon and CSS class for an inspected tile
func sightHTMLInfo(sight gameplay.Sight) (string, string) {
	if sight.Hidden {
		return "▒", "fog"
	}
	if sight.Kind == world.Wall {
		return "█", "wall"
	}
	icon := "·"
	if sight.Something {
		icon = "○"
	}
	switch sight.Mark {
	case world.ColorCyan:
		return icon, "mark-cyan"
	case world.ColorMagenta:
		return icon, "mark-magenta"
	case world.ColorYellow:
		return icon, "mark-yellow"
	}
	if sight.Something {
		return icon, "something"
	}
	return icon, "floor"
}

// stripANSI removes ANSI escape codes from a string
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
