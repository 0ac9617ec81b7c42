// Package hints turns info keys into player-facing texts. Texts live in
// embedded gettext catalogues, one per language.
package hints

import (
	"embed"
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// ErrUnknownLanguage is returned when no catalogue exists for a language
var ErrUnknownLanguage = errors.New("hints: unknown language")

// Kind selects what an info hint tells
type Kind int

const (
	WordLength Kind = iota
	ExitChamber
	DecoyCount
	kindCount
)

func (k Kind) msgid() string {
	switch k {
	case WordLength:
		return "HINT_WORD_LENGTH"
	case ExitChamber:
		return "HINT_EXIT_CHAMBER"
	default:
		return "HINT_DECOYS"
	}
}

// KindFor rotates hint kinds by maze index
func KindFor(mazeIndex int) Kind {
	return Kind(mazeIndex % int(kindCount))
}

// Facts are the puzzle values hints may reveal
type Facts struct {
	WordLength int
	Decoys     int
	// ExitMaze is zero-based; texts show it one-based
	ExitMaze int
}

// Catalogue is a loaded language
type Catalogue struct {
	Language string
	po       *gotext.Po
}

// Load parses the embedded catalogue for lang
func Load(lang string) (*Catalogue, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("%q: %w", lang, ErrUnknownLanguage)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalogue{Language: lang, po: po}, nil
}

// poGet looks message ids up through a function variable: ids are keys,
// not format strings, so go vet's printf check must not treat Get as a
// Printf wrapper.
var poGet = (*gotext.Po).Get

// Get translates a message id, formatting vars into it
func (c *Catalogue) Get(msgid string, vars ...any) string {
	return poGet(c.po, msgid, vars...)
}

// Text renders one hint
func (c *Catalogue) Text(kind Kind, f Facts) string {
	switch kind {
	case WordLength:
		return c.Get(kind.msgid(), f.WordLength)
	case ExitChamber:
		return c.Get(kind.msgid(), f.ExitMaze+1)
	default:
		return c.Get(kind.msgid(), f.Decoys)
	}
}

// Build maps each maze's info key to its hint text. keys[m] belongs to maze m.
func (c *Catalogue) Build(keys []uint16, f Facts) map[uint16]string {
	texts := make(map[uint16]string, len(keys))
	for m, key := range keys {
		texts[key] = c.Text(KindFor(m), f)
	}
	return texts
}
