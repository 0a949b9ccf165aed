package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/theory"
)

var livePort int

func init() {
	liveCmd.Flags().IntVar(&livePort, "port", 0, "MIDI input port number")
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Analyzes notes played on a MIDI input",
	Long:  `Listens to a MIDI input and re-runs the theory analysis as notes are held.`,
	Run: func(cmd *cobra.Command, args []string) {
		live()
	},
}

// heldNames converts the pressed MIDI keys into engine note names.
// Engine octave = midi/12, matching Note.MIDINumber.
func heldNames(pressed map[uint8]bool) []string {
	var names []string
	for key := range pressed {
		n := pitch.FromChromaticIndex(int(key)%12, int(key)/12, false)
		names = append(names, n.Name(false))
	}
	return names
}

func live() {
	defer midi.CloseDriver()

	in, err := midi.InPort(livePort)
	if err != nil {
		fmt.Printf("Can't find MIDI input %v: %v\n", livePort, err)
		return
	}

	var mu sync.Mutex
	pressed := make(map[uint8]bool)

	// one report per strum, not one per string
	debounced := debounce.New(150 * time.Millisecond)
	analyze := func() {
		mu.Lock()
		names := heldNames(pressed)
		mu.Unlock()
		if len(names) == 0 {
			return
		}
		fmt.Printf("\n-- %v --\n", names)
		printAnalysis(theory.Analyze(names))
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			pressed[key] = true
			mu.Unlock()
			debounced(analyze)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(pressed, key)
			mu.Unlock()
			debounced(analyze)
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Printf("Listening on %v, press Ctrl-C to quit\n", in.String())
	select {}
}
