package midi

import (
	"testing"

	"github.com/jsphweid/abcroll/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteMsg struct {
	absTicks int64
	off      bool
	key      uint8
	velocity uint8
}

func collectNoteMsgs(track smf.Track) []noteMsg {
	var res []noteMsg
	var absTicks int64
	for _, event := range track {
		absTicks += int64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			res = append(res, noteMsg{absTicks: absTicks, key: key, velocity: velocity})
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			res = append(res, noteMsg{absTicks: absTicks, off: true, key: key})
		}
	}
	return res
}

func TestWritesOneTrackPerRoll(t *testing.T) {
	rollA := model.Timeline{{Start: 0, End: 1, Pitch: 60, Velocity: 80}}
	rollB := model.Timeline{{Start: 0, End: 1, Pitch: 64, Velocity: 80}}

	s := FromRolls([]model.Timeline{rollA, rollB})
	assert.Len(t, s.Tracks, 2)
}

func TestConvertsSecondsToTicks(t *testing.T) {
	// 120 BPM at 480 ticks per quarter: one second is 960 ticks
	roll := model.Timeline{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
		{Start: 0, End: 2, Pitch: 64, Velocity: 80},
	}

	s := FromRolls([]model.Timeline{roll})

	assert := assert.New(t)
	assert.Len(s.Tracks, 1)
	assert.Equal([]noteMsg{
		{absTicks: 0, key: 60, velocity: 80},
		{absTicks: 0, key: 64, velocity: 80},
		{absTicks: 960, off: true, key: 60},
		{absTicks: 1920, off: true, key: 64},
	}, collectNoteMsgs(s.Tracks[0]))
}

func TestNoteOffSortsBeforeNoteOnAtSameTick(t *testing.T) {
	roll := model.Timeline{
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
		{Start: 1, End: 2, Pitch: 60, Velocity: 80},
	}

	s := FromRolls([]model.Timeline{roll})

	assert.Equal(t, []noteMsg{
		{absTicks: 0, key: 60, velocity: 80},
		{absTicks: 960, off: true, key: 60},
		{absTicks: 960, key: 60, velocity: 80},
		{absTicks: 1920, off: true, key: 60},
	}, collectNoteMsgs(s.Tracks[0]))
}

func TestSkipsPitchesOutsideMidiRange(t *testing.T) {
	roll := model.Timeline{
		{Start: 0, End: 1, Pitch: 155, Velocity: 80},
		{Start: 0, End: 1, Pitch: -24, Velocity: 80},
		{Start: 0, End: 1, Pitch: 60, Velocity: 80},
	}

	s := FromRolls([]model.Timeline{roll})

	assert.Equal(t, []noteMsg{
		{absTicks: 0, key: 60, velocity: 80},
		{absTicks: 960, off: true, key: 60},
	}, collectNoteMsgs(s.Tracks[0]))
}
