// Package checkpoints hands out teleport codes and indexes them globally.
package checkpoints

import (
	"errors"
	"fmt"
	"sort"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/seeds"
)

// Code and key spaces
const (
	CodeMin = 1000
	CodeMax = 9999
	KeyMin  = 100
	KeyMax  = 999
)

var (
	// ErrSpaceExhausted is returned when a maze's slice runs past the code or key space
	ErrSpaceExhausted = errors.New("checkpoints: code space exhausted")
	// ErrDuplicate is returned when a code or coordinate is registered twice
	ErrDuplicate = errors.New("checkpoints: duplicate registration")
)

// Allocator holds one shuffled permutation of the code space and one of the
// info key space for a whole puzzle. Maze m takes the m-th slice, so no two
// mazes can ever draw the same value.
type Allocator struct {
	codes []uint16
	keys  []uint16
}

// NewAllocator shuffles both spaces under seeds derived from master
func NewAllocator(master uint64) *Allocator {
	return &Allocator{
		codes: permutation(CodeMin, CodeMax, seeds.ForPuzzle(master, seeds.Codes)),
		keys:  permutation(KeyMin, KeyMax, seeds.ForPuzzle(master, seeds.InfoKeys)),
	}
}

func permutation(lo, hi int, seed uint64) []uint16 {
	rng := seeds.NewRand(seed)
	out := make([]uint16, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, uint16(v))
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Codes returns the count codes of maze mazeIndex, in assignment order
func (a *Allocator) Codes(mazeIndex, count int) ([]uint16, error) {
	lo, hi := mazeIndex*count, (mazeIndex+1)*count
	if mazeIndex < 0 || count < 0 || hi > len(a.codes) {
		return nil, fmt.Errorf("maze %d wants codes [%d, %d) of %d: %w", mazeIndex, lo, hi, len(a.codes), ErrSpaceExhausted)
	}
	out := make([]uint16, count)
	copy(out, a.codes[lo:hi])
	return out, nil
}

// InfoKey returns the info hint key of maze mazeIndex
func (a *Allocator) InfoKey(mazeIndex int) (uint16, error) {
	if mazeIndex < 0 || mazeIndex >= len(a.keys) {
		return 0, fmt.Errorf("maze %d has no info key: %w", mazeIndex, ErrSpaceExhausted)
	}
	return a.keys[mazeIndex], nil
}

// Registry is the exact code <-> position bijection across all mazes
type Registry struct {
	byCode map[uint16]world.Position
	byPos  map[world.Position]uint16
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byCode: make(map[uint16]world.Position),
		byPos:  make(map[world.Position]uint16),
	}
}

// Add records a checkpoint. A repeated code or position is rejected.
func (r *Registry) Add(code uint16, pos world.Position) error {
	if prev, ok := r.byCode[code]; ok {
		return fmt.Errorf("code %d at %v and %v: %w", code, prev, pos, ErrDuplicate)
	}
	if prev, ok := r.byPos[pos]; ok {
		return fmt.Errorf("%v holds codes %d and %d: %w", pos, prev, code, ErrDuplicate)
	}
	r.byCode[code] = pos
	r.byPos[pos] = code
	return nil
}

// AddMaze registers every checkpoint found on a maze's grid
func (r *Registry) AddMaze(mazeIndex int, g *world.Grid) error {
	for _, placed := range g.Items() {
		cp, ok := placed.Item.(world.Checkpoint)
		if !ok {
			continue
		}
		if err := r.Add(cp.Code, world.At(mazeIndex, placed.At)); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a code to the tile holding it
func (r *Registry) Lookup(code uint16) (world.Position, bool) {
	pos, ok := r.byCode[code]
	return pos, ok
}

// CodeAt returns the code of the checkpoint at pos
func (r *Registry) CodeAt(pos world.Position) (uint16, bool) {
	code, ok := r.byPos[pos]
	return code, ok
}

// Len returns the number of registered checkpoints
func (r *Registry) Len() int {
	return len(r.byCode)
}

// Codes returns every code in ascending order
func (r *Registry) Codes() []uint16 {
	codes := make([]uint16, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Verify checks that both directions agree and every code is in range
func (r *Registry) Verify() error {
	if len(r.byCode) != len(r.byPos) {
		return fmt.Errorf("%d codes but %d positions: %w", len(r.byCode), len(r.byPos), ErrDuplicate)
	}
	for code, pos := range r.byCode {
		if code < CodeMin || code > CodeMax {
			return fmt.Errorf("code %d outside [%d, %d]", code, CodeMin, CodeMax)
		}
		if back, ok := r.byPos[pos]; !ok || back != code {
			return fmt.Errorf("code %d -> %v -> %d: %w", code, pos, back, ErrDuplicate)
		}
	}
	return nil
}
