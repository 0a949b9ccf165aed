// Package export renders resolved note sequences to standard MIDI
// files so a scale or chord can be auditioned outside the UI.
package export

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/util"
)

const velocity = 96

// key converts a note to a MIDI key using the engine's own octave
// convention (octave 0 = keys 0-11), clamped into MIDI range.
func key(n pitch.Note) uint8 {
	return uint8(util.Clamp(n.MIDINumber(), 0, 127))
}

// WriteSequence writes the notes as quarter notes in order, one track,
// at the given tempo.
func WriteSequence(path string, notes []pitch.Note, bpm float64) error {
	if len(notes) == 0 {
		return fmt.Errorf("nothing to export")
	}

	clock := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, n := range notes {
		tr.Add(0, midi.NoteOn(0, key(n), velocity))
		tr.Add(clock.Ticks4th(), midi.NoteOff(0, key(n)))
	}
	tr.Close(0)
	s.Add(tr)

	return s.WriteFile(path)
}

// WriteChord writes the notes sounding together for a whole note.
func WriteChord(path string, notes []pitch.Note, bpm float64) error {
	if len(notes) == 0 {
		return fmt.Errorf("nothing to export")
	}

	clock := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, n := range notes {
		tr.Add(0, midi.NoteOn(0, key(n), velocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = clock.Ticks4th() * 4
		}
		tr.Add(delta, midi.NoteOff(0, key(n)))
	}
	tr.Close(0)
	s.Add(tr)

	return s.WriteFile(path)
}
