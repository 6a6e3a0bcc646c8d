package abc

import "errors"

// Error kinds raised while parsing. Any of them aborts compilation of the
// whole current song; callers decide whether to skip it and continue.
var (
	ErrMalformedNote   = errors.New("malformed note")
	ErrEmptyChord      = errors.New("empty chord")
	ErrUnknownKey      = errors.New("unknown key")
	ErrMalformedTempo  = errors.New("malformed tempo")
	ErrMalformedLength = errors.New("malformed note length")
)
