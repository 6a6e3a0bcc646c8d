package constants

import "os"

func GetSongsDir() string {
	path := os.Getenv("SONGS_PATH")
	if path != "" {
		return path
	}
	return "./songs"
}

// DefaultVelocity is stamped on every note event.
const DefaultVelocity = 80

// TicksPerQuarter is the metric resolution of written MIDI files.
const TicksPerQuarter = 480

// OutputBPM is the fixed tempo meta event written into MIDI files. Note
// events already carry absolute seconds, so this only fixes the
// ticks-per-second scale.
const OutputBPM = 120

const SongExtension = ".abc"
