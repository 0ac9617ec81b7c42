// Package state assembles a whole puzzle from a seed and serves the
// read-mostly query interface both player views use.
package state

import (
	"fmt"
	"sync"

	"twinmaze/pkg/engine/world"
	"twinmaze/pkg/game/checkpoints"
	"twinmaze/pkg/game/clues"
	"twinmaze/pkg/game/config"
	"twinmaze/pkg/game/generator"
	"twinmaze/pkg/game/hints"
	"twinmaze/pkg/game/maze"
	"twinmaze/pkg/game/pits"
	"twinmaze/pkg/game/seeds"
	"twinmaze/pkg/game/words"
	"twinmaze/pkg/logger"
)

// Options overrides the collaborators Generate uses. Zero fields get
// defaults: DefaultConfig, the Prim's carver, the embedded vocabulary and the
// catalogue for Config.Language.
type Options struct {
	Config   *config.Config
	Provider generator.GridProvider
	Words    words.Source
	Hints    *hints.Catalogue
}

// Puzzle is a fully generated world. Everything except tile occupants is
// fixed after Generate; occupants change only through RemoveLetter.
type Puzzle struct {
	mu sync.RWMutex

	Seed      uint64
	Config    config.Config
	Word      string
	Scrambled words.Scrambled
	// Parts[m] is the slice of Scrambled placed in maze m
	Parts [][]rune
	Start world.Position
	Exit  world.Position

	mazes       []*maze.Maze
	checkpoints *checkpoints.Registry
	infoTexts   map[uint16]string
	infoKeys    []uint16
	clues       []clues.Set
	catalogue   *hints.Catalogue
}

// Generate derives a puzzle from seed. Seed 0 is rejected: every maze
// would run on the same sub-seeds.
func Generate(seed uint64, opts Options) (*Puzzle, error) {
	if seed == 0 {
		return nil, fmt.Errorf("seed 0 collapses every maze seed: %w", ErrConfiguration)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	provider := opts.Provider
	if provider == nil {
		provider = generator.NewDefault(cfg.Grid.Rows, cfg.Grid.Cols)
	}
	source := opts.Words
	if source == nil {
		source = words.Embedded{}
	}
	catalogue := opts.Hints
	if catalogue == nil {
		var err error
		if catalogue, err = hints.Load(cfg.Language); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	p := &Puzzle{
		Seed:        seed,
		Config:      *cfg,
		checkpoints: checkpoints.NewRegistry(),
		catalogue:   catalogue,
	}

	word, err := words.Pick(source.Vocabulary(), cfg.MinWordLength, seeds.NewRand(seeds.ForPuzzle(seed, seeds.Word)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	p.Word = word
	p.Scrambled = words.Scramble(word, cfg.DecoyLetters, seeds.NewRand(seeds.ForPuzzle(seed, seeds.Decoys)))
	p.Parts = words.Split(p.Scrambled.Letters, cfg.Mazes)

	if err := p.buildMazes(provider); err != nil {
		return nil, err
	}
	if err := p.link(); err != nil {
		return nil, err
	}
	if err := p.placeStartExit(); err != nil {
		return nil, err
	}

	for m, mz := range p.mazes {
		p.clues = append(p.clues, clues.Select(mz.Grid, seeds.SeedFor(seed, m, seeds.Clues),
			cfg.ColorMarksRevealed, cfg.SomethingHintsRevealed))
	}
	p.infoTexts = catalogue.Build(p.infoKeys, hints.Facts{
		WordLength: len([]rune(word)),
		Decoys:     cfg.DecoyLetters,
		ExitMaze:   p.Exit.Maze,
	})

	if err := p.verifyLetters(); err != nil {
		return nil, err
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}

	logger.Info("puzzle generated",
		"seed", seed,
		"mazes", len(p.mazes),
		"word_length", len([]rune(word)),
		"checkpoints", p.checkpoints.Len(),
		"start", p.Start.String(),
		"exit", p.Exit.String())

	return p, nil
}

// buildMazes is the first phase: every maze is built on its own seeds and
// owns disjoint state
func (p *Puzzle) buildMazes(provider generator.GridProvider) error {
	alloc := checkpoints.NewAllocator(p.Seed)
	for m := 0; m < p.Config.Mazes; m++ {
		codes, err := alloc.Codes(m, p.Config.CheckpointsPerMaze)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		key, err := alloc.InfoKey(m)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		mz, err := maze.Build(provider, maze.Params{
			Index:      m,
			Mazes:      p.Config.Mazes,
			Master:     p.Seed,
			Letters:    p.Parts[m],
			Codes:      codes,
			InfoKey:    key,
			ColorMarks: p.Config.ColorMarksPerMaze,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		p.mazes = append(p.mazes, mz)
		p.infoKeys = append(p.infoKeys, key)
	}
	return nil
}

// link is the second phase: the global checkpoint index needs every maze
func (p *Puzzle) link() error {
	for m, mz := range p.mazes {
		if err := p.checkpoints.AddMaze(m, mz.Grid); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
	}
	return nil
}

// placeStartExit puts the player on a random free tile of a random maze and
// the exit on a free tile of another maze (the same maze only when N = 1)
func (p *Puzzle) placeStartExit() error {
	n := len(p.mazes)

	rng := seeds.NewRand(seeds.ForPuzzle(p.Seed, seeds.Start))
	sm := rng.Intn(n)
	start, err := p.pickFree(sm, rng.Intn, nil)
	if err != nil {
		return err
	}
	p.Start = start

	rng = seeds.NewRand(seeds.ForPuzzle(p.Seed, seeds.Exit))
	em := 0
	if n > 1 {
		em = rng.Intn(n - 1)
		if em >= sm {
			em++
		}
	}
	exit, err := p.pickFree(em, rng.Intn, &start)
	if err != nil {
		return err
	}
	p.Exit = exit
	return nil
}

func (p *Puzzle) pickFree(m int, intn func(int) int, avoid *world.Position) (world.Position, error) {
	g := p.mazes[m].Grid
	var free []world.Coordinate
	for _, c := range g.FreePassages() {
		if !g.IsPlayablePosition(c) {
			continue
		}
		if avoid != nil && world.At(m, c) == *avoid {
			continue
		}
		free = append(free, c)
	}
	if len(free) == 0 {
		return world.Position{}, fmt.Errorf("maze %d has no free tile: %w", m, ErrConfiguration)
	}
	return world.At(m, free[intn(len(free))]), nil
}

// verifyLetters checks the placed letters, read back in maze and placement
// order, spell the scrambled string. Only valid before any collection.
func (p *Puzzle) verifyLetters() error {
	var placed []rune
	for _, mz := range p.mazes {
		placed = append(placed, mz.PlacedLetters()...)
	}
	if string(placed) != string(p.Scrambled.Letters) {
		return fmt.Errorf("placed letters %q, partitioned %q: %w", string(placed), string(p.Scrambled.Letters), ErrInvariantViolation)
	}
	if words.Recover(p.Scrambled) != p.Word {
		return fmt.Errorf("decoy mask does not recover the word: %w", ErrInvariantViolation)
	}
	return nil
}

// Verify checks the structural invariants: one shape for all mazes, no item
// on a wall, a bijective checkpoint index with one code per placed
// checkpoint, a complete pit graph, and start/exit on distinct passages.
func (p *Puzzle) Verify() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	grids := make([]*world.Grid, len(p.mazes))
	placedCheckpoints := 0
	for m, mz := range p.mazes {
		g := mz.Grid
		if g.Rows() != p.mazes[0].Grid.Rows() || g.Cols() != p.mazes[0].Grid.Cols() {
			return fmt.Errorf("maze %d is %dx%d: %w", m, g.Rows(), g.Cols(), ErrInvariantViolation)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("maze %d: %w: %w", m, ErrInvariantViolation, err)
		}
		for _, placed := range g.Items() {
			if _, ok := placed.Item.(world.Checkpoint); ok {
				placedCheckpoints++
			}
		}
		grids[m] = g
	}

	if err := p.checkpoints.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	if p.checkpoints.Len() != placedCheckpoints {
		return fmt.Errorf("%d checkpoints placed, %d indexed: %w", placedCheckpoints, p.checkpoints.Len(), ErrInvariantViolation)
	}
	if err := pits.Verify(grids); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	if p.Start == p.Exit {
		return fmt.Errorf("start and exit both at %v: %w", p.Start, ErrInvariantViolation)
	}
	for _, pos := range []world.Position{p.Start, p.Exit} {
		if !p.validPosition(pos) || !grids[pos.Maze].IsPassage(pos.Coordinate()) {
			return fmt.Errorf("%v is not a passage: %w", pos, ErrInvariantViolation)
		}
	}
	return nil
}
