package world

// TileKind tells walls from walkable passages
type TileKind int

const (
	Wall TileKind = iota
	Passage
)

func (k TileKind) String() string {
	if k == Passage {
		return "Passage"
	}
	return "Wall"
}

// Color is a floor mark. ColorNone means the tile is blank.
type Color int

const (
	ColorNone Color = iota
	ColorCyan
	ColorMagenta
	ColorYellow
)

// MarkColors lists the non-blank colors in cyclic order.
var MarkColors = []Color{ColorCyan, ColorMagenta, ColorYellow}

func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorYellow:
		return "yellow"
	default:
		return "blank"
	}
}

// Next returns the following mark color, wrapping from the last back to the
// first. Blank stays blank.
func (c Color) Next() Color {
	if c == ColorNone {
		return ColorNone
	}
	return MarkColors[int(c)%len(MarkColors)]
}

// Tile is a single grid cell. Occupant is nil when the tile holds nothing.
type Tile struct {
	Kind     TileKind
	Occupant Item
	Mark     Color
	Visible  bool
}

// IsPassage returns true if the tile can be walked on
func (t Tile) IsPassage() bool {
	return t.Kind == Passage
}

// IsFree returns true for a passage holding no item
func (t Tile) IsFree() bool {
	return t.Kind == Passage && t.Occupant == nil
}
