// Package config holds the puzzle generation constants.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for constants no puzzle can satisfy
var ErrInvalid = errors.New("config: invalid puzzle configuration")

// Config holds every recognised generation option
type Config struct {
	// Mazes is the number of chambers N
	Mazes int `yaml:"mazes"`

	// CheckpointsPerMaze is the number of teleport checkpoints in each maze
	CheckpointsPerMaze int `yaml:"checkpoints_per_maze"`

	// ColorMarksPerMaze is the number of floor tiles painted in each maze
	ColorMarksPerMaze int `yaml:"color_marks_per_maze"`

	// ColorMarksRevealed is how many marks the explorer is shown, one of them wrong
	ColorMarksRevealed int `yaml:"color_marks_revealed"`

	// SomethingHintsRevealed is how many item tiles are flagged without saying what
	SomethingHintsRevealed int `yaml:"something_hints_revealed"`

	// DecoyLetters is the number of extra letters mixed into the secret word
	DecoyLetters int `yaml:"decoy_letters"`

	// MinWordLength filters the vocabulary
	MinWordLength int `yaml:"min_word_length"`

	// Grid is passed to the carver, in cells
	Grid GridConfig `yaml:"grid"`

	// ExitPresses is the number of consecutive presses that open the exit
	ExitPresses int `yaml:"exit_presses"`

	// Language selects the hint text catalogue
	Language string `yaml:"language"`

	// Bindings rebinds commands by action name, e.g. hint: "x"
	Bindings map[string]string `yaml:"bindings"`
}

// GridConfig sizes every maze. A maze of R x C cells carves into a
// (2R+1) x (2C+1) tile grid.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TileRows returns the height of the carved tile grid
func (g GridConfig) TileRows() int { return 2*g.Rows + 1 }

// TileCols returns the width of the carved tile grid
func (g GridConfig) TileCols() int { return 2*g.Cols + 1 }

// Passages returns the number of passage tiles in a perfect maze of this size
func (g GridConfig) Passages() int { return 2*g.Rows*g.Cols - 1 }

// DefaultConfig returns the stock three-chamber puzzle
func DefaultConfig() *Config {
	return &Config{
		Mazes:                  3,
		CheckpointsPerMaze:     4,
		ColorMarksPerMaze:      30,
		ColorMarksRevealed:     10,
		SomethingHintsRevealed: 5,
		DecoyLetters:           3,
		MinWordLength:          7,
		Grid: GridConfig{
			Rows: 10,
			Cols: 15,
		},
		ExitPresses: 5,
		Language:    "en",
	}
}

// LoadConfig loads the configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks the constants against each other. Word length is not
// known here, so letter capacity is checked again at assembly.
func (c *Config) Validate() error {
	switch {
	case c.Mazes < 1:
		return fmt.Errorf("mazes = %d, need at least 1: %w", c.Mazes, ErrInvalid)
	case c.Grid.Rows < 1 || c.Grid.Cols < 1:
		return fmt.Errorf("grid %dx%d: %w", c.Grid.Rows, c.Grid.Cols, ErrInvalid)
	case c.CheckpointsPerMaze < 0 || c.ColorMarksPerMaze < 0 || c.DecoyLetters < 0:
		return fmt.Errorf("negative item count: %w", ErrInvalid)
	case c.ColorMarksRevealed < 0 || c.ColorMarksRevealed > c.ColorMarksPerMaze:
		return fmt.Errorf("color_marks_revealed = %d of %d marks: %w", c.ColorMarksRevealed, c.ColorMarksPerMaze, ErrInvalid)
	case c.SomethingHintsRevealed < 0:
		return fmt.Errorf("something_hints_revealed = %d: %w", c.SomethingHintsRevealed, ErrInvalid)
	case c.MinWordLength < 1:
		return fmt.Errorf("min_word_length = %d: %w", c.MinWordLength, ErrInvalid)
	case c.ExitPresses < 1:
		return fmt.Errorf("exit_presses = %d: %w", c.ExitPresses, ErrInvalid)
	case c.Language == "":
		return fmt.Errorf("language is empty: %w", ErrInvalid)
	}

	if c.ColorMarksPerMaze > c.Grid.Passages() {
		return fmt.Errorf("%d color marks on %d passages: %w", c.ColorMarksPerMaze, c.Grid.Passages(), ErrInvalid)
	}
	// one pit per other maze plus one info hint, before any letters
	fixed := c.CheckpointsPerMaze + (c.Mazes - 1) + 1
	if fixed > c.Grid.Passages() {
		return fmt.Errorf("%d items per maze on %d passages: %w", fixed, c.Grid.Passages(), ErrInvalid)
	}
	return nil
}
