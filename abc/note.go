package abc

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jsphweid/abcroll/model"
)

func isPitchLetter(c byte) bool {
	return (c >= 'A' && c <= 'G') || (c >= 'a' && c <= 'g') || c == 'z'
}

func isOctaveMarker(c byte) bool {
	return c == ',' || c == '\''
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type rawNote struct {
	accidental string
	pitch      string
	octave     string
	value      string
}

// matchNote tries to match one note token starting at s[i]. Accepted shape
// is `accidental? letter octave* duration?` where the accidental is a run
// of ^, a run of _, or a single =, and the duration is an integer, a
// fraction, or a partial fraction like "/", "/4" or "3/". On success it
// returns the components and the index one past the token.
func matchNote(s string, i int) (rawNote, int, bool) {
	j := i
	switch {
	case j < len(s) && s[j] == '^':
		for j < len(s) && s[j] == '^' {
			j++
		}
	case j < len(s) && s[j] == '_':
		for j < len(s) && s[j] == '_' {
			j++
		}
	case j < len(s) && s[j] == '=':
		j++
	}
	if j == len(s) || !isPitchLetter(s[j]) {
		return rawNote{}, 0, false
	}
	var r rawNote
	r.accidental = s[i:j]
	r.pitch = s[j : j+1]
	j++

	k := j
	for k < len(s) && isOctaveMarker(s[k]) {
		k++
	}
	r.octave = s[j:k]

	v := k
	for v < len(s) && isDigit(s[v]) {
		v++
	}
	if v < len(s) && s[v] == '/' {
		v++
		for v < len(s) && isDigit(s[v]) {
			v++
		}
	}
	r.value = s[k:v]
	return r, v, true
}

// parseDuration converts a written duration to whole-note units. "/" alone
// is 1/2, a missing numerator defaults to 1 and a missing denominator to 2,
// so "/4" is 1/4 and "3/" is 3/2. No duration at all is one whole note.
func parseDuration(s string) (*big.Rat, error) {
	if s == "" {
		return big.NewRat(1, 1), nil
	}
	num, den := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
		if num == "" {
			num = "1"
		}
		if den == "" {
			den = "2"
		}
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil, err
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, fmt.Errorf("zero denominator in %q", s)
	}
	return big.NewRat(n, d), nil
}

func accidentalOffset(marks string) int {
	switch marks[0] {
	case '=':
		return 0
	case '^':
		return len(marks)
	default:
		return -len(marks)
	}
}

// ParseNote parses a single note token and scales its written duration by
// the context's current default note length. The scaling happens here, at
// parse time, so a later L: line never rescales already-parsed notes. The
// context is only read; accidentals are recorded at pitch resolution.
func ParseNote(ctx *Context, token string) (model.ParsedNote, error) {
	raw, end, ok := matchNote(token, 0)
	if !ok || end != len(token) {
		return model.ParsedNote{}, fmt.Errorf("%w: %q", ErrMalformedNote, token)
	}
	value, err := parseDuration(raw.value)
	if err != nil {
		return model.ParsedNote{}, fmt.Errorf("%w: %q", ErrMalformedNote, token)
	}
	note := model.ParsedNote{
		Pitch:  raw.pitch,
		Octave: raw.octave,
		Value:  value.Mul(value, ctx.DefaultNoteLength),
	}
	if raw.accidental != "" {
		offset := accidentalOffset(raw.accidental)
		note.Accidental = &offset
	}
	return note, nil
}
