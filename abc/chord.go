package abc

import "fmt"

// SplitChord splits a group of concatenated note tokens into the individual
// note substrings, greedily matching left to right. Brackets and anything
// else that cannot start a note are skipped one byte at a time.
func SplitChord(group string) ([]string, error) {
	var notes []string
	for i := 0; i < len(group); {
		if _, end, ok := matchNote(group, i); ok {
			notes = append(notes, group[i:end])
			i = end
			continue
		}
		i++
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyChord, group)
	}
	return notes, nil
}
