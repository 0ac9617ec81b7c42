package world

import "fmt"

// Coordinate addresses a tile inside a single grid.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ManhattanDistance calculates the Manhattan distance between two coordinates
func ManhattanDistance(a, b Coordinate) int {
	rowDist := a.Row - b.Row
	colDist := a.Col - b.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}

// Position addresses a tile across the whole puzzle. Every cross-maze
// reference is a Position resolved through the owning puzzle, never a
// pointer into a maze.
type Position struct {
	Maze int
	Row  int
	Col  int
}

// At builds a Position for a coordinate in the given maze.
func At(maze int, c Coordinate) Position {
	return Position{Maze: maze, Row: c.Row, Col: c.Col}
}

// Coordinate drops the maze index.
func (p Position) Coordinate() Coordinate {
	return Coordinate{Row: p.Row, Col: p.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("#%d(%d,%d)", p.Maze, p.Row, p.Col)
}
