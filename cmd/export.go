package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louiecai/fretforge/export"
	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
)

var (
	exportOut   string
	exportBpm   float64
	exportChord bool
)

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "fretforge.mid", "output MIDI file")
	exportCmd.Flags().Float64Var(&exportBpm, "bpm", 120, "tempo")
	exportCmd.Flags().BoolVar(&exportChord, "chord", false, "sound all notes together instead of a run")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <pattern>",
	Short: "Writes a resolved scale or chord to a MIDI file",
	Long:  `Writes a resolved scale or chord to a standard MIDI file, e.g. "export A min --chord".`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := pitch.Parse(args[0])
		cobra.CheckErr(err)

		notes, err := scale.Resolve(root, args[1])
		cobra.CheckErr(err)

		if exportChord {
			err = export.WriteChord(exportOut, notes, exportBpm)
		} else {
			err = export.WriteSequence(exportOut, notes, exportBpm)
		}
		cobra.CheckErr(err)
		fmt.Printf("Wrote %v notes to %v\n", len(notes), exportOut)
	},
}
