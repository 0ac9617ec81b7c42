package world

import "fmt"

// Item is one of Letter, Checkpoint, Pit or InfoHint. The set is closed:
// only types in this package implement it, so a type switch over the four
// cases is exhaustive.
type Item interface {
	fmt.Stringer
	item()
}

// Letter is a collectible character of the scrambled secret word.
type Letter struct {
	Char rune
}

// Checkpoint carries a globally unique teleport code.
type Checkpoint struct {
	Code uint16
}

// Pit drops the player into the paired pit of Destination maze.
type Pit struct {
	Destination int
}

// InfoHint points at a hint text by key.
type InfoHint struct {
	Key uint16
}

func (Letter) item()     {}
func (Checkpoint) item() {}
func (Pit) item()        {}
func (InfoHint) item()   {}

func (l Letter) String() string     { return fmt.Sprintf("Letter(%c)", l.Char) }
func (c Checkpoint) String() string { return fmt.Sprintf("Checkpoint(%d)", c.Code) }
func (p Pit) String() string        { return fmt.Sprintf("Pit(%d)", p.Destination) }
func (i InfoHint) String() string   { return fmt.Sprintf("Info(%d)", i.Key) }

// PlacedItem pairs an item with the tile holding it.
type PlacedItem struct {
	At   Coordinate
	Item Item
}
