package abc

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// keyTable maps the 15 canonical key-signature names to their number of
// sharps (positive) or flats (negative).
var keyTable = map[string]int{
	"Cb": -7, "Gb": -6, "Db": -5, "Ab": -4, "Eb": -3, "Bb": -2, "F": -1,
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
}

// ParseKey resolves a key-signature name against the canonical table.
func ParseKey(name string) (int, error) {
	key, ok := keyTable[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

// SetKey installs a new key signature and clears the accidentals table.
// TODO: figure out whether a key change should really wipe explicit
// accidentals that are still in effect
func (c *Context) SetKey(name string) error {
	key, err := ParseKey(name)
	if err != nil {
		return err
	}
	c.Key = key
	c.ResetAccidentals()
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// parseRational parses "n" or "n/m" with explicit digits on both sides.
func parseRational(s string) (*big.Rat, bool) {
	num, den := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
	}
	if !allDigits(num) || !allDigits(den) {
		return nil, false
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil, false
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil || d == 0 {
		return nil, false
	}
	return big.NewRat(n, d), true
}

// ParseTempo parses a tempo marking of the form `(unit=)?bpm` into seconds
// per whole note, computed as 60/bpm/unit. The unit defaults to a quarter
// note, so a bare "120" means 120 quarter-note beats per minute.
func ParseTempo(text string) (*big.Rat, error) {
	unitText := "1/4"
	bpmText := text
	if i := strings.IndexByte(text, '='); i >= 0 {
		unitText, bpmText = text[:i], text[i+1:]
	}
	unit, ok := parseRational(unitText)
	if !ok || unit.Sign() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTempo, text)
	}
	if !allDigits(bpmText) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTempo, text)
	}
	bpm, err := strconv.ParseInt(bpmText, 10, 64)
	if err != nil || bpm == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTempo, text)
	}
	tempo := big.NewRat(60, 1)
	tempo.Quo(tempo, big.NewRat(bpm, 1))
	tempo.Quo(tempo, unit)
	return tempo, nil
}

// SetDefaultNoteLength replaces the default note length outright; already
// parsed notes keep the scaling they got.
func (c *Context) SetDefaultNoteLength(text string) error {
	v, ok := parseRational(text)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMalformedLength, text)
	}
	c.DefaultNoteLength = v
	return nil
}
