package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/abcroll/constants"
	"github.com/jsphweid/abcroll/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over the songs dir",
	Long:  `Creates a report over the songs dir`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type songsReport struct {
	numSongs      int64
	numFailed     int64
	numEvents     int64
	numOutOfRange int64
	totalSeconds  float64
	pitchCounts   map[int]int64
}

func analyzeSongs(paths []string) songsReport {
	report := songsReport{pitchCounts: make(map[int]int64)}
	for _, path := range paths {
		report.numSongs += 1
		timeline, err := compileSong(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			report.numFailed += 1
			continue
		}
		var songEnd float64
		for _, evt := range timeline {
			report.numEvents += 1
			report.pitchCounts[evt.Pitch] += 1
			if evt.Pitch < 0 || evt.Pitch > 127 {
				report.numOutOfRange += 1
			}
			if evt.End > songEnd {
				songEnd = evt.End
			}
		}
		report.totalSeconds += songEnd
	}
	return report
}

func report() {
	paths := util.GatherAllSongPaths(constants.GetSongsDir())
	songsReport := analyzeSongs(paths)

	fmt.Printf("songsReport.numSongs: %v\n", songsReport.numSongs)
	fmt.Printf("songsReport.numFailed: %v\n", songsReport.numFailed)
	fmt.Printf("songsReport.numEvents: %v\n", songsReport.numEvents)
	fmt.Printf("songsReport.numOutOfRange: %v\n", songsReport.numOutOfRange)
	fmt.Printf("songsReport.totalSeconds: %v\n", songsReport.totalSeconds)

	pitches := util.GetKeys(songsReport.pitchCounts)
	sort.Ints(pitches)
	for _, pitch := range pitches {
		fmt.Printf("pitch %v: %v\n", pitch, songsReport.pitchCounts[pitch])
	}
}
