package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/abcroll/constants"
	"github.com/jsphweid/abcroll/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// secondsToTicks converts absolute seconds to absolute ticks at the fixed
// output tempo.
func secondsToTicks(seconds float64) int64 {
	ticksPerSecond := float64(constants.TicksPerQuarter) * constants.OutputBPM / 60
	return int64(math.Round(seconds * ticksPerSecond))
}

type boundary struct {
	ticks    int64
	off      bool
	pitch    uint8
	velocity uint8
}

// FromRolls serializes piano rolls into a single MIDI file, one track per
// roll, all on the acoustic grand. Events with pitches outside the MIDI
// range are skipped with a warning rather than wrapped around.
func FromRolls(rolls []model.Timeline) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	for i, roll := range rolls {
		var boundaries []boundary
		for _, evt := range roll {
			if evt.Pitch < 0 || evt.Pitch > 127 {
				fmt.Printf("Skipping pitch %v in track %v because it is outside the MIDI range\n", evt.Pitch, i+1)
				continue
			}
			boundaries = append(boundaries,
				boundary{ticks: secondsToTicks(evt.Start), pitch: uint8(evt.Pitch), velocity: evt.Velocity},
				boundary{ticks: secondsToTicks(evt.End), off: true, pitch: uint8(evt.Pitch)},
			)
		}
		// offs sort before ons on the same tick so a re-struck pitch
		// does not get swallowed by the previous note's release
		sort.SliceStable(boundaries, func(a, b int) bool {
			if boundaries[a].ticks != boundaries[b].ticks {
				return boundaries[a].ticks < boundaries[b].ticks
			}
			return boundaries[a].off && !boundaries[b].off
		})

		var track smf.Track
		track.Add(0, smf.MetaTempo(constants.OutputBPM))
		track.Add(0, midi.ProgramChange(0, 0))
		var lastTicks int64
		for _, b := range boundaries {
			delta := uint32(b.ticks - lastTicks)
			lastTicks = b.ticks
			if b.off {
				track.Add(delta, midi.NoteOff(0, b.pitch))
			} else {
				track.Add(delta, midi.NoteOn(0, b.pitch, b.velocity))
			}
		}
		track.Close(0)
		s.Add(track)
	}
	return s
}

// WriteRolls writes piano rolls to path as a MIDI file.
func WriteRolls(rolls []model.Timeline, path string) error {
	return FromRolls(rolls).WriteFile(path)
}

func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
