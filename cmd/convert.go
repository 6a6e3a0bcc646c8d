package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/abcroll/constants"
	"github.com/jsphweid/abcroll/file"
	"github.com/jsphweid/abcroll/midi"
	"github.com/jsphweid/abcroll/model"
	"github.com/jsphweid/abcroll/roll"
	"github.com/jsphweid/abcroll/util"
	"github.com/spf13/cobra"
)

var songsDir string
var outputDir string

func init() {
	convertCmd.Flags().StringVar(&songsDir, "songs-dir", "", "directory containing the ABC songs")
	convertCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory to save the MIDI files")
	convertCmd.MarkFlagRequired("songs-dir")
	convertCmd.MarkFlagRequired("output-dir")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert-songs",
	Short: "Bulk converts a directory of ABC songs to MIDI files",
	Long:  `Bulk converts a directory of ABC songs to MIDI files`,
	Run: func(cmd *cobra.Command, args []string) {
		convertSongs(songsDir, outputDir)
	},
}

func compileSong(path string) (model.Timeline, error) {
	lines, err := file.ReadSongLines(path)
	if err != nil {
		return nil, err
	}
	return roll.FromLines(lines)
}

func convertSongs(songsDir string, outputDir string) {
	util.EnsureDir(outputDir)
	paths := util.GatherAllSongPaths(songsDir)
	for i, path := range paths {
		fmt.Printf("Processing %v of %v songs\n", i+1, len(paths))
		timeline, err := compileSong(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		base := strings.TrimSuffix(filepath.Base(path), constants.SongExtension)
		outPath := filepath.Join(outputDir, base+".mid")
		if err := midi.WriteRolls([]model.Timeline{timeline}, outPath); err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
		}
	}
}
