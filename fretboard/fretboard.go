// Package fretboard builds the string×fret note grid the UI renders.
package fretboard

import (
	"github.com/louiecai/fretforge/model"
	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
)

// Fretboard is the fully materialized note grid for one tuning and
// fret count. It is rebuilt wholesale on any change, never patched.
type Fretboard struct {
	Strings   []pitch.Note
	FretCount int
	grid      [][]pitch.Note
}

// New builds the grid: cell [s][f] is string s transposed up f
// half-steps, fret 0 being the open string.
func New(openStrings []pitch.Note, fretCount int) *Fretboard {
	grid := make([][]pitch.Note, len(openStrings))
	for s, open := range openStrings {
		row := make([]pitch.Note, fretCount+1)
		for f := 0; f <= fretCount; f++ {
			row[f] = open.Transpose(f)
		}
		grid[s] = row
	}
	return &Fretboard{Strings: openStrings, FretCount: fretCount, grid: grid}
}

// Grid exposes the full grid; rows have length FretCount+1.
func (fb *Fretboard) Grid() [][]pitch.Note {
	return fb.grid
}

// Note returns the note at a position, or ok=false when either index is
// out of range. Never panics.
func (fb *Fretboard) Note(stringIndex, fret int) (pitch.Note, bool) {
	if stringIndex < 0 || stringIndex >= len(fb.grid) {
		return pitch.Note{}, false
	}
	if fret < 0 || fret > fb.FretCount {
		return pitch.Note{}, false
	}
	return fb.grid[stringIndex][fret], true
}

// HighlightMap resolves each overlay and maps octave-stripped note
// names to the overlay's color. The first overlay to claim a name wins.
// Overlays with a bad root or unknown pattern surface their error so
// the caller can skip that entry.
func HighlightMap(overlays []model.Overlay) (map[string]string, error) {
	colors := make(map[string]string)
	for _, ov := range overlays {
		names, err := scale.ResolveNames(ov.Root, ov.Pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if _, taken := colors[name]; !taken {
				colors[name] = ov.Color
			}
		}
	}
	return colors, nil
}
