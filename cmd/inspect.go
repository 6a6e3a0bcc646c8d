package cmd

import (
	"fmt"

	"github.com/jsphweid/abcroll/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a generated MIDI file",
	Long:  `Inspects a generated MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.ReadFile(path)
	if err != nil {
		panic("Could not inspect because: " + err.Error())
	}
	for i, track := range s.Tracks {
		fmt.Printf("track %v:\n", i+1)
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				fmt.Printf("  %vus: on %v vel %v\n", absTime, key, velocity)
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				fmt.Printf("  %vus: off %v\n", absTime, key)
			}
		}
	}
}
