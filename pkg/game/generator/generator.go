// Package generator provides the grid carvers that turn a seed into a
// wall/passage occupancy grid.
package generator

// GridProvider is an interface for maze carving algorithms. Carve must be a
// pure function of its seed and must wall the outer border of the grid.
type GridProvider interface {
	Carve(seed uint64) [][]bool
	Name() string
}

// Default maze size in cells, matching the carved 21x31 tile grid
var (
	DefaultRows = 10
	DefaultCols = 15
)

// NewDefault returns the default carver for rows x cols maze cells
func NewDefault(rows, cols int) GridProvider {
	return &PrimsGenerator{Rows: rows, Cols: cols}
}
