package abc

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesKnownKeys(t *testing.T) {
	cases := []struct {
		name string
		key  int
	}{
		{"Cb", -7}, {"Gb", -6}, {"Db", -5}, {"Ab", -4}, {"Eb", -3},
		{"Bb", -2}, {"F", -1}, {"C", 0}, {"G", 1}, {"D", 2},
		{"A", 3}, {"E", 4}, {"B", 5}, {"F#", 6}, {"C#", 7},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("key %v", c.name), func(t *testing.T) {
			key, err := ParseKey(c.name)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.key, key)
		})
	}
}

func TestRejectsUnknownKeys(t *testing.T) {
	for _, name := range []string{"", "H", "c", "F##", "Cbb", "Fb"} {
		_, err := ParseKey(name)
		assert.ErrorIs(t, err, ErrUnknownKey)
	}
}

func TestSetKeyClearsAccidentals(t *testing.T) {
	ctx := NewContext()
	note, err := ParseNote(ctx, "_C,,")
	assert := assert.New(t)
	assert.NoError(err)
	MidiPitch(ctx, note)
	assert.Len(ctx.Accidentals, 1)

	assert.NoError(ctx.SetKey("D"))
	assert.Equal(2, ctx.Key)
	assert.Empty(ctx.Accidentals)
}

func TestParsesTempoMarkings(t *testing.T) {
	cases := []struct {
		text string
		num  int64
		den  int64
	}{
		{"1=120", 1, 2},
		{"1/4=120", 2, 1},
		{"1/8=120", 4, 1},
		{"1/16=120", 8, 1},
		{"120", 2, 1},
		{"60", 4, 1},
		{"3/8=90", 16, 9},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("tempo %v", c.text), func(t *testing.T) {
			tempo, err := ParseTempo(c.text)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(0, tempo.Cmp(big.NewRat(c.num, c.den)))
		})
	}
}

func TestRejectsMalformedTempos(t *testing.T) {
	texts := []string{"", "=120", "1/=120", "/4=120", "1/4=", "abc", "1/4=abc", "-120", "0", "1/0=120", "1/4=120=60"}
	for _, text := range texts {
		t.Run(fmt.Sprintf("rejects %q", text), func(t *testing.T) {
			_, err := ParseTempo(text)
			assert.ErrorIs(t, err, ErrMalformedTempo)
		})
	}
}

func TestSetsDefaultNoteLength(t *testing.T) {
	ctx := NewContext()
	assert := assert.New(t)
	assert.NoError(ctx.SetDefaultNoteLength("1/8"))
	assert.Equal(0, ctx.DefaultNoteLength.Cmp(big.NewRat(1, 8)))

	assert.NoError(ctx.SetDefaultNoteLength("1"))
	assert.Equal(0, ctx.DefaultNoteLength.Cmp(big.NewRat(1, 1)))

	assert.ErrorIs(ctx.SetDefaultNoteLength("fast"), ErrMalformedLength)
	assert.ErrorIs(ctx.SetDefaultNoteLength("1/0"), ErrMalformedLength)
}
