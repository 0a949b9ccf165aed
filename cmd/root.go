package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretforge",
	Short: "Guitar fretboard theory engine",
	Long:  `Music-theory engine behind the FretForge fretboard visualizer: grids, scales, chords and harmonic analysis.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
