package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louiecai/fretforge/constants"
	"github.com/louiecai/fretforge/fretboard"
	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/tuning"
)

var (
	gridTuning string
	gridFrets  int
	gridFlat   bool
)

func init() {
	gridCmd.Flags().StringVar(&gridTuning, "tuning", "standard", "preset name or comma-separated open strings, e.g. E2,A2,D3,G3,B3,E4")
	gridCmd.Flags().IntVar(&gridFrets, "frets", constants.DefaultFretCount, "number of frets")
	gridCmd.Flags().BoolVar(&gridFlat, "flat", false, "spell notes flat-side")
	rootCmd.AddCommand(gridCmd)
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Prints the fretboard note grid",
	Long:  `Prints the fretboard note grid for a tuning and fret count.`,
	Run: func(cmd *cobra.Command, args []string) {
		printGrid()
	},
}

func resolveTuning(arg string) ([]pitch.Note, error) {
	if notes, ok := tuning.Preset(arg); ok {
		return notes, nil
	}
	return tuning.Parse(strings.Split(arg, ","))
}

func printGrid() {
	openStrings, err := resolveTuning(gridTuning)
	cobra.CheckErr(err)

	fb := fretboard.New(openStrings, gridFrets)
	grid := fb.Grid()

	// high string on top, like a chord chart
	for s := len(grid) - 1; s >= 0; s-- {
		var cells []string
		for _, n := range grid[s] {
			cells = append(cells, fmt.Sprintf("%-4s", n.Display(gridFlat)))
		}
		fmt.Println(strings.Join(cells, " "))
	}
}
