package abc

import (
	"math/big"

	"github.com/jsphweid/abcroll/model"
)

// Context is the mutable interpreter state for one song. It is created
// fresh per song, mutated line by line as metadata and accidentals come in,
// and never shared across songs.
type Context struct {
	// Tempo is in seconds per whole note. The default corresponds to
	// 120 BPM with a quarter-note beat unit.
	Tempo *big.Rat

	// Key counts the sharps (positive) or flats (negative) of the active
	// key signature, -7 to 7.
	Key int

	// Accidentals maps a note spelling to its explicit semitone offset.
	// An entry is written whenever a note carries an explicit mark and the
	// whole table is cleared whenever the key signature changes.
	Accidentals map[model.PitchRef]int

	// DefaultNoteLength scales every written duration, in whole notes.
	DefaultNoteLength *big.Rat
}

func NewContext() *Context {
	return &Context{
		Tempo:             big.NewRat(2, 1),
		Accidentals:       make(map[model.PitchRef]int),
		DefaultNoteLength: big.NewRat(1, 4),
	}
}

// ResetAccidentals drops every stored explicit accidental.
func (c *Context) ResetAccidentals() {
	c.Accidentals = make(map[model.PitchRef]int)
}
