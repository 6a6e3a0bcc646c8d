package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abcroll",
	Short: "ABC notation to MIDI compiler",
	Long:  `Compiles ABC notation songs into piano rolls and writes them out as MIDI files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
