// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/state"
)

// MapDumpFilename is the file DumpToFile writes inside its directory
const MapDumpFilename = "map.txt"

// TileSymbol returns the single-character symbol for a tile (no player/exit
// overlay). With fogged set, hidden tiles show '?'.
func TileSymbol(t world.Tile, fogged bool) rune {
	if fogged && !t.Visible {
		return '?'
	}
	if t.Kind == world.Wall {
		return '#'
	}
	switch it := t.Occupant.(type) {
	case world.Pit:
		return '!'
	case world.Checkpoint:
		return '*'
	case world.InfoHint:
		return 'i'
	case world.Letter:
		return it.Char
	default:
		return '.'
	}
}

// writeMapGrid writes one maze with start, exit and player overlays.
func writeMapGrid(w io.Writer, p *state.Puzzle, m int, fogged bool, player *world.Position) {
	rows := make([][]rune, p.Rows())
	for r := range rows {
		rows[r] = make([]rune, p.Cols())
	}
	_ = p.ForEachTile(m, func(c world.Coordinate, t world.Tile) {
		rows[c.Row][c.Col] = TileSymbol(t, fogged)
	})
	overlay := func(pos world.Position, r rune) {
		if pos.Maze == m {
			rows[pos.Row][pos.Col] = r
		}
	}
	overlay(p.Start, 'S')
	overlay(p.Exit, 'E')
	if player != nil {
		overlay(*player, '@')
	}
	for _, line := range rows {
		fmt.Fprintln(w, string(line))
	}
}

// WriteDump writes a full debug dump: metadata, legend, fogged and fully
// revealed maps per maze, and the checkpoint, pit, info and clue tables.
// Format is human-readable (sections, key: value, consistent structure).
// player may be nil.
func WriteDump(w io.Writer, p *state.Puzzle, player *world.Position) error {
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== PUZZLE DUMP DEBUG (mazes, links, clues) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", p.Seed)
	fmt.Fprintf(bw, "mazes: %d\n", p.MazeCount())
	fmt.Fprintf(bw, "grid_rows: %d\n", p.Rows())
	fmt.Fprintf(bw, "grid_cols: %d\n", p.Cols())
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "word: %q\n", p.Word)
	fmt.Fprintf(bw, "scrambled: %q\n", p.Scrambled.String())
	fmt.Fprintf(bw, "decoys: %q\n", string(p.Scrambled.DecoyLetters()))
	for m, part := range p.Parts {
		fmt.Fprintf(bw, "part_%d: %q\n", m, string(part))
	}
	fmt.Fprintf(bw, "start: %v\n", p.Start)
	fmt.Fprintf(bw, "exit: %v\n", p.Exit)
	if player != nil {
		fmt.Fprintf(bw, "player: %v\n", *player)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (tile symbols) ---")
	fmt.Fprintln(bw, ". = passage  # = wall  ? = fog  ! = pit  * = checkpoint  i = info hint  a-z = letter  S = start  E = exit  @ = player")
	fmt.Fprintln(bw, "")

	for m := 0; m < p.MazeCount(); m++ {
		fmt.Fprintf(bw, "--- Maze %d (seed %d, fogged) ---\n", m, p.MazeSeed(m))
		writeMapGrid(bw, p, m, true, player)
		fmt.Fprintln(bw, "")
		fmt.Fprintf(bw, "--- Maze %d (fully revealed) ---\n", m)
		writeMapGrid(bw, p, m, false, player)
		fmt.Fprintln(bw, "")
	}

	// --- Checkpoints ---
	fmt.Fprintln(bw, "Checkpoints:")
	for _, code := range p.CheckpointCodes() {
		pos, _ := p.CheckpointCoordinate(code)
		fmt.Fprintf(bw, "  code: %d maze: %d row: %d col: %d\n", code, pos.Maze, pos.Row, pos.Col)
	}
	fmt.Fprintln(bw, "")

	// --- Pits ---
	fmt.Fprintln(bw, "Pits:")
	for m := 0; m < p.MazeCount(); m++ {
		var pits []world.Position
		_ = p.ForEachTile(m, func(c world.Coordinate, t world.Tile) {
			if _, ok := t.Occupant.(world.Pit); ok {
				pits = append(pits, world.At(m, c))
			}
		})
		for _, from := range pits {
			to, err := p.PitArrival(from)
			if err != nil {
				fmt.Fprintf(bw, "  from: %v error: %v\n", from, err)
				continue
			}
			fmt.Fprintf(bw, "  from: %v to: %v\n", from, to)
		}
	}
	fmt.Fprintln(bw, "")

	// --- Info hints ---
	fmt.Fprintln(bw, "Info hints:")
	for m := 0; m < p.MazeCount(); m++ {
		key, _ := p.InfoKey(m)
		text, _ := p.InfoHint(key)
		fmt.Fprintf(bw, "  maze: %d key: %d text: %q\n", m, key, text)
	}
	fmt.Fprintln(bw, "")

	// --- Clues ---
	fmt.Fprintln(bw, "Clues:")
	for m := 0; m < p.MazeCount(); m++ {
		set, _ := p.Clues(m)
		fmt.Fprintf(bw, "  maze: %d deceptive_index: %d\n", m, set.DeceptiveIndex)
		for i, mark := range set.Marks {
			fmt.Fprintf(bw, "    mark: %d at: %v reported: %s actual: %s\n", i, mark.At, mark.Reported, mark.Actual)
		}
		for _, at := range set.Somethings {
			fmt.Fprintf(bw, "    something: %v\n", at)
		}
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END PUZZLE DUMP ===")
	return bw.Flush()
}

// DumpToFile writes WriteDump output to map.txt inside dir and returns the
// absolute path.
func DumpToFile(p *state.Puzzle, player *world.Position, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, MapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, p, player); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
