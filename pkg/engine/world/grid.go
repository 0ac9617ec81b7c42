package world

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when an occupancy grid has no rows or ragged rows
var ErrEmptyGrid = errors.New("world: occupancy grid is empty or not rectangular")

// Grid is the tile matrix of one maze
type Grid struct {
	tiles [][]Tile
	rows  int
	cols  int
}

// NewGrid creates a grid of visible walls with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// FromOccupancy wraps a carved boolean grid (true = passable) into tiles.
// Every tile starts visible and unmarked.
func FromOccupancy(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	g := NewGrid(len(cells), cols)
	for row, line := range cells {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", row, len(line), cols, ErrEmptyGrid)
		}
		for col, open := range line {
			if open {
				g.tiles[row][col].Kind = Passage
			}
		}
	}
	return g, nil
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.tiles = make([][]Tile, rows)
	for row := range g.tiles {
		g.tiles[row] = make([]Tile, cols)
		for col := range g.tiles[row] {
			g.tiles[row][col] = Tile{Kind: Wall, Visible: true}
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a coordinate is within grid bounds
func (g *Grid) IsValidPosition(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsPlayablePosition checks if a coordinate is off the border ring.
// Carved grids always wall their border, so only interior tiles take items.
func (g *Grid) IsPlayablePosition(c Coordinate) bool {
	return c.Row >= 1 && c.Row < g.rows-1 && c.Col >= 1 && c.Col < g.cols-1
}

// Tile returns the tile at c for in-place mutation, or nil if out of bounds
func (g *Grid) Tile(c Coordinate) *Tile {
	if !g.IsValidPosition(c) {
		return nil
	}
	return &g.tiles[c.Row][c.Col]
}

// TileAt returns a copy of the tile at c
func (g *Grid) TileAt(c Coordinate) (Tile, bool) {
	t := g.Tile(c)
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// IsPassage reports whether c is in bounds and walkable
func (g *Grid) IsPassage(c Coordinate) bool {
	t := g.Tile(c)
	return t != nil && t.Kind == Passage
}

// ForEachTile iterates over all tiles in row-major order
func (g *Grid) ForEachTile(fn func(c Coordinate, t *Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Coordinate{Row: row, Col: col}, &g.tiles[row][col])
		}
	}
}

// Items returns every placed item in row-major order
func (g *Grid) Items() []PlacedItem {
	var items []PlacedItem
	g.ForEachTile(func(c Coordinate, t *Tile) {
		if t.Occupant != nil {
			items = append(items, PlacedItem{At: c, Item: t.Occupant})
		}
	})
	return items
}

// Marks returns every color-marked coordinate in row-major order
func (g *Grid) Marks() []Coordinate {
	var marks []Coordinate
	g.ForEachTile(func(c Coordinate, t *Tile) {
		if t.Mark != ColorNone {
			marks = append(marks, c)
		}
	})
	return marks
}

// FreePassages returns every item-free passage in row-major order
func (g *Grid) FreePassages() []Coordinate {
	var free []Coordinate
	g.ForEachTile(func(c Coordinate, t *Tile) {
		if t.IsFree() {
			free = append(free, c)
		}
	})
	return free
}

// Equal reports whether two grids hold identical tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.tiles {
		for col := range g.tiles[row] {
			if g.tiles[row][col] != other.tiles[row][col] {
				return false
			}
		}
	}
	return true
}

// Validate checks that no item sits on a wall
func (g *Grid) Validate() error {
	var err error
	g.ForEachTile(func(c Coordinate, t *Tile) {
		if err == nil && t.Occupant != nil && t.Kind != Passage {
			err = fmt.Errorf("%v on wall at %v", t.Occupant, c)
		}
	})
	return err
}
