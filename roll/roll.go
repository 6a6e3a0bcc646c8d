package roll

import (
	"math/big"
	"strings"

	"github.com/jsphweid/abcroll/abc"
	"github.com/jsphweid/abcroll/constants"
	"github.com/jsphweid/abcroll/model"
)

func isMetaLine(line string) bool {
	return len(line) >= 2 && line[0] >= 'A' && line[0] <= 'Z' && line[1] == ':'
}

func shortestValue(chord []model.ParsedNote) *big.Rat {
	min := chord[0].Value
	for _, n := range chord[1:] {
		if n.Value.Cmp(min) < 0 {
			min = n.Value
		}
	}
	return min
}

// FromLines compiles one song's notation lines into a piano roll. Metadata
// lines mutate the interpreter context as the scan goes; note lines turn
// into absolutely-timed events. The first malformed line aborts the whole
// song and a partially built timeline must not be used.
func FromLines(lines []string) (model.Timeline, error) {
	var timeline model.Timeline
	ctx := abc.NewContext()

	// secondsElapsed banks the time spent before the last tempo change;
	// beatsElapsed counts whole notes since it.
	secondsElapsed := new(big.Rat)
	beatsElapsed := new(big.Rat)

	for _, line := range lines {
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isMetaLine(line) {
			rest := strings.TrimSpace(line[2:])
			switch line[0] {
			case 'K':
				if err := ctx.SetKey(rest); err != nil {
					return nil, err
				}
			case 'Q':
				// flush at the old tempo first so already-placed notes
				// keep their positions
				secondsElapsed.Add(secondsElapsed, new(big.Rat).Mul(ctx.Tempo, beatsElapsed))
				beatsElapsed = new(big.Rat)
				tempo, err := abc.ParseTempo(rest)
				if err != nil {
					return nil, err
				}
				ctx.Tempo = tempo
			case 'L':
				if err := ctx.SetDefaultNoteLength(rest); err != nil {
					return nil, err
				}
			}
			// every other capital-letter field is recognized but ignored
			continue
		}

		for _, group := range strings.Fields(line) {
			// a bare note is a chord of one
			if !strings.HasPrefix(group, "[") {
				group = "[" + group + "]"
			}
			tokens, err := abc.SplitChord(group)
			if err != nil {
				return nil, err
			}
			chord := make([]model.ParsedNote, 0, len(tokens))
			for _, tok := range tokens {
				note, err := abc.ParseNote(ctx, tok)
				if err != nil {
					return nil, err
				}
				chord = append(chord, note)
			}

			start := new(big.Rat).Mul(ctx.Tempo, beatsElapsed)
			start.Add(start, secondsElapsed)
			for _, note := range chord {
				if note.IsRest() {
					continue
				}
				pitch := abc.MidiPitch(ctx, note)
				end := new(big.Rat).Mul(ctx.Tempo, note.Value)
				end.Add(end, start)
				s, _ := start.Float64()
				e, _ := end.Float64()
				timeline = append(timeline, model.NoteEvent{
					Start:    s,
					End:      e,
					Pitch:    pitch,
					Velocity: constants.DefaultVelocity,
				})
			}
			// the shortest member paces the chord, so longer members
			// overhang into the next chord's window
			beatsElapsed.Add(beatsElapsed, shortestValue(chord))
		}
	}
	return timeline, nil
}
