package state

import "errors"

var (
	// ErrConfiguration means the constants cannot produce a puzzle: too many
	// items for the grid, an exhausted code space, an unusable seed.
	ErrConfiguration = errors.New("puzzle: configuration error")

	// ErrLookupMiss is a recoverable miss on player input: an unknown code or
	// key, a tile out of range, or a tile that does not hold what was asked.
	ErrLookupMiss = errors.New("puzzle: lookup miss")

	// ErrInvariantViolation means generation produced an inconsistent world
	ErrInvariantViolation = errors.New("puzzle: invariant violation")
)
