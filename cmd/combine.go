package cmd

import (
	"fmt"

	"github.com/jsphweid/abcroll/midi"
	"github.com/jsphweid/abcroll/model"
	"github.com/spf13/cobra"
)

var songPaths []string
var outputPath string

func init() {
	combineCmd.Flags().StringSliceVar(&songPaths, "song-paths", nil, "paths to one or more ABC songs")
	combineCmd.Flags().StringVar(&outputPath, "output-path", "", "path to save the combined MIDI file")
	combineCmd.MarkFlagRequired("song-paths")
	combineCmd.MarkFlagRequired("output-path")
	rootCmd.AddCommand(combineCmd)
}

var combineCmd = &cobra.Command{
	Use:   "convert-and-combine",
	Short: "Converts one or more ABC songs into a single MIDI file as separate tracks",
	Long:  `Converts one or more ABC songs into a single MIDI file as separate tracks`,
	Run: func(cmd *cobra.Command, args []string) {
		combineSongs(songPaths, outputPath)
	},
}

func combineSongs(paths []string, outputPath string) {
	var rolls []model.Timeline
	for _, path := range paths {
		timeline, err := compileSong(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		rolls = append(rolls, timeline)
	}
	if err := midi.WriteRolls(rolls, outputPath); err != nil {
		panic("Write failed for midi file: " + err.Error())
	}
}
