package model

// NoteEvent is one absolutely-timed note in a compiled song. Start and End
// are seconds from the beginning of the song, End >= Start.
type NoteEvent struct {
	Start    float64
	End      float64
	Pitch    int
	Velocity uint8
}

// Timeline is the piano roll for one song. Events appear in the order the
// compiler emitted them, which is chronological by chord but not guaranteed
// sorted by start time within one.
type Timeline = []NoteEvent
