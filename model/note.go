package model

import "math/big"

// PitchRef identifies a note spelling exactly as written: the letter
// (case-sensitive) plus its full octave-marker run.
type PitchRef struct {
	Pitch  string
	Octave string
}

// ParsedNote is one parsed note token. Accidental is nil when the note
// carries no explicit mark; 0 means an explicit natural. Value is the
// duration in whole notes, already scaled by the default note length that
// was in effect when the note was parsed.
type ParsedNote struct {
	Accidental *int
	Pitch      string
	Octave     string
	Value      *big.Rat
}

func (n ParsedNote) IsRest() bool {
	return n.Pitch == "z"
}

func (n ParsedNote) Ref() PitchRef {
	return PitchRef{Pitch: n.Pitch, Octave: n.Octave}
}
