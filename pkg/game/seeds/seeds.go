// Package seeds derives the sub-seeds every generation step runs on.
//
// A maze m of a puzzle with master seed S runs on S*(1+m); each concern adds
// a fixed offset to that, so re-seeding one concern's generator never
// consumes draws meant for another. The package holds no randomness itself.
package seeds

import "math/rand"

// Concern names one consumer of randomness.
type Concern uint64

// Per-maze concerns
const (
	Maze Concern = iota // carving and code/key permutations
	Fog
	Colors
	Letters
	Checkpoints
	Pits
	InfoHint
	Clues
)

// Puzzle-wide concerns, derived from maze 0 with offsets past the per-maze set
const (
	Word Concern = iota + 10
	Decoys
	Start
	Exit
	Codes
	InfoKeys
)

func (c Concern) String() string {
	switch c {
	case Maze:
		return "maze"
	case Fog:
		return "fog"
	case Colors:
		return "colors"
	case Letters:
		return "letters"
	case Checkpoints:
		return "checkpoints"
	case Pits:
		return "pits"
	case InfoHint:
		return "info"
	case Clues:
		return "clues"
	case Word:
		return "word"
	case Decoys:
		return "decoys"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case Codes:
		return "codes"
	case InfoKeys:
		return "info-keys"
	default:
		return "unknown"
	}
}

// ForMaze returns the per-maze seed S*(1+m). Arithmetic wraps on overflow.
// For S == 0 every maze collapses to 0; callers reject that seed.
func ForMaze(master uint64, mazeIndex int) uint64 {
	return master * uint64(1+mazeIndex)
}

// SeedFor returns the seed of one concern inside one maze
func SeedFor(master uint64, mazeIndex int, concern Concern) uint64 {
	return ForMaze(master, mazeIndex) + uint64(concern)
}

// ForPuzzle returns the seed of a puzzle-wide concern
func ForPuzzle(master uint64, concern Concern) uint64 {
	return SeedFor(master, 0, concern)
}

// NewRand returns a fresh generator for a derived seed. Every concern gets
// its own instance; none is shared across steps.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
