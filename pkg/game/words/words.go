// Package words supplies the secret word, scrambles it with decoy letters and
// splits the result across mazes.
package words

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

//go:embed vocabulary.txt
var vocabulary string

// ErrNoWord is returned when no vocabulary entry is long enough
var ErrNoWord = errors.New("words: no word satisfies the length filter")

const decoyAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Source supplies candidate words
type Source interface {
	Vocabulary() []string
}

// Embedded is the built-in English word list
type Embedded struct{}

// Vocabulary returns the trimmed, lower-cased non-empty lines of the list
func (Embedded) Vocabulary() []string {
	return Parse(vocabulary)
}

// List is a fixed in-memory vocabulary
type List []string

// Vocabulary returns the list itself
func (l List) Vocabulary() []string {
	return l
}

// Parse splits newline-separated text into words
func Parse(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Pick filters vocab to words of at least minLen letters and draws one
func Pick(vocab []string, minLen int, rng *rand.Rand) (string, error) {
	var candidates []string
	for _, w := range vocab {
		if len([]rune(w)) >= minLen {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("min length %d over %d words: %w", minLen, len(vocab), ErrNoWord)
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// Scrambled is the secret word with decoy letters inserted. Decoy[i] marks
// Letters[i] as a decoy.
type Scrambled struct {
	Letters []rune
	Decoy   []bool
}

func (s Scrambled) String() string {
	return string(s.Letters)
}

// DecoyLetters returns the inserted decoys in order
func (s Scrambled) DecoyLetters() []rune {
	var out []rune
	for i, r := range s.Letters {
		if s.Decoy[i] {
			out = append(out, r)
		}
	}
	return out
}

// Scramble inserts decoys random letters into word, each at a random
// position of the growing string
func Scramble(word string, decoys int, rng *rand.Rand) Scrambled {
	s := Scrambled{
		Letters: []rune(word),
		Decoy:   make([]bool, len([]rune(word))),
	}
	for i := 0; i < decoys; i++ {
		r := rune(decoyAlphabet[rng.Intn(len(decoyAlphabet))])
		at := rng.Intn(len(s.Letters) + 1)
		s.Letters = insert(s.Letters, at, r)
		s.Decoy = insert(s.Decoy, at, true)
	}
	return s
}

func insert[T any](s []T, at int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

// Recover drops the decoys by position
func Recover(s Scrambled) string {
	var b strings.Builder
	for i, r := range s.Letters {
		if !s.Decoy[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Split cuts letters into n consecutive parts of len/n; the last part also
// takes the remainder. Concatenating the parts gives back letters.
func Split(letters []rune, n int) [][]rune {
	if n <= 0 {
		return nil
	}
	size := len(letters) / n
	parts := make([][]rune, n)
	for i := 0; i < n; i++ {
		lo, hi := i*size, (i+1)*size
		if i == n-1 {
			hi = len(letters)
		}
		parts[i] = append([]rune(nil), letters[lo:hi]...)
	}
	return parts
}
