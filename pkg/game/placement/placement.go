// Package placement allocates distinct free tiles by rejection sampling.
package placement

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/seeds"
)

// ErrConfiguration is returned when a request can never be satisfied: more
// points were asked for than eligible tiles exist, or the attempt cap ran out.
var ErrConfiguration = errors.New("placement: not enough eligible tiles")

// attemptsPerTile scales the rejection-sampling cap with grid area
const attemptsPerTile = 64

// Exclusion is a set of coordinates callers reserve on top of occupied tiles
type Exclusion = mapset.Set[world.Coordinate]

// NewExclusion returns an empty exclusion set
func NewExclusion() Exclusion {
	return mapset.New[world.Coordinate]()
}

// MaxAttempts returns the number of draws a single request may take
func MaxAttempts(rows, cols int) int {
	return attemptsPerTile * rows * cols
}

// Sampler draws interior coordinates from its own seeded generator. After a
// call the generator keeps its state, so the caller may continue drawing
// from Rand() for attributes of the placed points.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler seeds a sampler
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: seeds.NewRand(seed)}
}

// Rand exposes the sampler's generator
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// Place re-seeds a generator with seed and picks count distinct eligible
// tiles. See Sampler.Sample.
func Place(g *world.Grid, count int, seed uint64, exclude Exclusion) ([]world.Coordinate, error) {
	return NewSampler(seed).Sample(g, count, exclude)
}

// IsEligible reports whether c may receive an item: an interior, unoccupied
// passage that the caller has not excluded
func IsEligible(g *world.Grid, c world.Coordinate, exclude Exclusion) bool {
	if !g.IsPlayablePosition(c) {
		return false
	}
	t := g.Tile(c)
	if !t.IsFree() {
		return false
	}
	return !exclude.Has(c)
}

// Eligible counts the tiles a request can draw from
func Eligible(g *world.Grid, exclude Exclusion) int {
	n := 0
	g.ForEachTile(func(c world.Coordinate, _ *world.Tile) {
		if IsEligible(g, c, exclude) {
			n++
		}
	})
	return n
}

// Sample draws uniformly random interior coordinates (row in [1, h-2], col
// in [1, w-2]) and keeps those that are eligible and not already chosen in
// this call, until count points are collected. Points are returned in draw
// order. It does not mark anything occupied: callers place items on the
// returned tiles before the next request so later requests exclude them.
func (s *Sampler) Sample(g *world.Grid, count int, exclude Exclusion) ([]world.Coordinate, error) {
	if count <= 0 {
		return nil, nil
	}
	if g.Rows() < 3 || g.Cols() < 3 {
		return nil, fmt.Errorf("%dx%d grid has no interior: %w", g.Rows(), g.Cols(), ErrConfiguration)
	}
	if available := Eligible(g, exclude); count > available {
		return nil, fmt.Errorf("want %d points, %d eligible: %w", count, available, ErrConfiguration)
	}

	chosen := mapset.New[world.Coordinate]()
	points := make([]world.Coordinate, 0, count)
	limit := MaxAttempts(g.Rows(), g.Cols())

	for attempt := 0; len(points) < count; attempt++ {
		if attempt >= limit {
			return nil, fmt.Errorf("placed %d of %d points after %d attempts: %w", len(points), count, limit, ErrConfiguration)
		}
		c := world.Coordinate{
			Row: 1 + s.rng.Intn(g.Rows()-2),
			Col: 1 + s.rng.Intn(g.Cols()-2),
		}
		if chosen.Has(c) || !IsEligible(g, c, exclude) {
			continue
		}
		chosen.Put(c)
		points = append(points, c)
	}

	return points, nil
}
