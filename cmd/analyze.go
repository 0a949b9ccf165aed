package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louiecai/fretforge/theory"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <note>...",
	Short: "Analyzes a set of notes",
	Long:  `Analyzes a set of notes: key, scale degrees, intervals, chord and tension.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printAnalysis(theory.Analyze(args))
	},
}

func printAnalysis(a theory.Analysis) {
	if a.Key != nil {
		fmt.Printf("key: %v %v (score %.2f), scale %v\n",
			a.Key.Tonic, a.Key.Mode, a.Key.Score, strings.Join(a.Key.Signature, " "))
	} else {
		fmt.Println("key: undetected")
	}

	for _, d := range a.Degrees {
		fmt.Printf("degree %v: %v (%v, %v, %v)\n", d.Degree, d.Note, d.Name, d.Quality, d.Roman)
	}

	for _, iv := range a.Intervals {
		fmt.Printf("interval %v-%v: %v (%v, %v)\n", iv.From, iv.To, iv.ShortName, iv.Name, iv.Consonance)
	}

	if a.Chord.Detected {
		fmt.Printf("chord: %v %v\n", a.Chord.Root, a.Chord.Quality)
	} else {
		fmt.Println("chord: none")
	}

	fmt.Printf("tension: %.1f/10\n", a.Tension)
	for _, s := range a.Suggestions {
		fmt.Printf("hint: %v\n", s)
	}
}
