package abc

import (
	"strings"

	"github.com/jsphweid/abcroll/model"
)

// pitchClasses spans the two written octaves, uppercase one octave below
// lowercase, anchored so uppercase C is middle C.
var pitchClasses = map[string]int{
	"C": 60, "D": 62, "E": 64, "F": 65, "G": 67, "A": 69, "B": 71,
	"c": 72, "d": 74, "e": 76, "f": 77, "g": 79, "a": 81, "b": 83,
}

// sharpOrder[i] is sharpened once the key has at least i+1 sharps;
// flatOrder likewise for flats.
var sharpOrder = [7]string{"F", "C", "G", "D", "A", "E", "B"}
var flatOrder = [7]string{"B", "E", "A", "D", "G", "C", "F"}

const semitonesPerOctave = 12

// MidiPitch resolves a parsed note against the context to an absolute MIDI
// note number. An explicit accidental on the note is recorded into the
// context before resolving, and a stored accidental for the exact same
// letter+octave spelling always wins over the key signature. The note must
// not be a rest. The result is not clamped to 0..127; extreme octave
// stacking can leave the MIDI range.
func MidiPitch(ctx *Context, note model.ParsedNote) int {
	// direction comes from the first marker only, magnitude from the
	// full run length
	octaveDirection := 0
	if len(note.Octave) > 0 {
		if note.Octave[0] == '\'' {
			octaveDirection = 1
		} else {
			octaveDirection = -1
		}
	}

	ref := note.Ref()
	if note.Accidental != nil {
		ctx.Accidentals[ref] = *note.Accidental
	}

	pitch := pitchClasses[note.Pitch] + octaveDirection*semitonesPerOctave*len(note.Octave)

	if offset, ok := ctx.Accidentals[ref]; ok {
		return pitch + offset
	}
	letter := strings.ToUpper(note.Pitch)
	for i, name := range sharpOrder {
		if ctx.Key >= i+1 && letter == name {
			pitch++
		}
	}
	for i, name := range flatOrder {
		if ctx.Key <= -(i+1) && letter == name {
			pitch--
		}
	}
	return pitch
}
