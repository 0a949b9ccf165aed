package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louiecai/fretforge/scale"
	"github.com/louiecai/fretforge/tuning"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(patternsCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <root> <pattern>",
	Short: "Resolves a scale or chord from a root note",
	Long:  `Resolves a scale or chord pattern from a root note, e.g. "resolve C diatonicMajor".`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		names, err := scale.ResolveNames(args[0], args[1])
		cobra.CheckErr(err)
		fmt.Println(strings.Join(names, " "))
	},
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Lists the known scales, chords and tuning presets",
	Long:  `Lists the known scales, chords and tuning presets.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scales: %v\n", strings.Join(scale.ScaleNames(), ", "))
		fmt.Printf("chords: %v\n", strings.Join(scale.ChordNames(), ", "))
		fmt.Printf("tunings: %v\n", strings.Join(tuning.PresetNames(), ", "))
	},
}
