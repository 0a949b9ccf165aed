// Package scale maps pattern names to semitone-offset tables and
// expands them from a root note.
package scale

import (
	"fmt"
	"sort"

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/util"
)

// UnknownPatternError reports a scale/chord name missing from the
// static tables. This is the one explicit validation boundary in the
// engine; callers skip the entry rather than crash a render.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown scale or chord pattern %q", e.Name)
}

// scalePatterns is data, not logic: adding a scale is a table edit.
// Offsets ascend and always include 0.
var scalePatterns = map[string][]int{
	"diatonicMajor":     {0, 2, 4, 5, 7, 9, 11},
	"diatonicMinor":     {0, 2, 3, 5, 7, 8, 10},
	"pentatonicMajor":   {0, 2, 4, 7, 9},
	"pentatonicMinor":   {0, 3, 5, 7, 10},
	"bluesMajor":        {0, 2, 3, 4, 7, 9},
	"bluesMinor":        {0, 3, 5, 6, 7, 10},
	"major":             {0, 2, 4, 5, 7, 9, 11},
	"minor":             {0, 2, 3, 5, 7, 8, 10},
	"harmonicMinor":     {0, 2, 3, 5, 7, 8, 11},
	"melodicMinor":      {0, 2, 3, 5, 7, 9, 11},
	"dorian":            {0, 2, 3, 5, 7, 9, 10},
	"phrygian":          {0, 1, 3, 5, 7, 8, 10},
	"lydian":            {0, 2, 4, 6, 7, 9, 11},
	"mixolydian":        {0, 2, 4, 5, 7, 9, 10},
	"locrian":           {0, 1, 3, 5, 6, 8, 10},
	"altered":           {0, 1, 3, 4, 6, 8, 10},
	"lydianDominant":    {0, 2, 4, 6, 7, 9, 10},
	"wholeTone":         {0, 2, 4, 6, 8, 10},
	"diminished":        {0, 2, 3, 5, 6, 8, 9, 11},
	"hirajoshi":         {0, 2, 3, 7, 8},
	"phrygianDominant":  {0, 1, 4, 5, 7, 8, 10},
	"hungarianMinor":    {0, 2, 3, 6, 7, 8, 11},
	"persian":           {0, 1, 4, 5, 6, 8, 11},
	"octatonic":         {0, 1, 3, 4, 6, 7, 9, 10},
	"hexatonic":         {0, 3, 4, 7, 8, 11},
	"chromatic":         {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"tritone":           {0, 1, 4, 6, 7, 10},
}

var chordPatterns = map[string][]int{
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"maj7": {0, 4, 7, 11},
	"min7": {0, 3, 7, 10},
	"7":    {0, 4, 7, 10},
	"dim7": {0, 3, 6, 9},
	"m7b5": {0, 3, 6, 10},
	"maj9": {0, 4, 7, 11, 14},
	"min9": {0, 3, 7, 10, 14},
	"9":    {0, 4, 7, 10, 14},
	"maj6": {0, 4, 7, 9},
	"min6": {0, 3, 7, 9},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
}

// Offsets looks up a pattern by name, scales first then chords. Names
// are case-sensitive and part of the external contract.
func Offsets(name string) ([]int, error) {
	if p, ok := scalePatterns[name]; ok {
		return p, nil
	}
	if p, ok := chordPatterns[name]; ok {
		return p, nil
	}
	return nil, &UnknownPatternError{Name: name}
}

// Resolve expands a pattern from a root note, one note per offset.
// Offsets that land on an already-seen chromatic index are dropped,
// keeping ascending-offset order (extensions past the octave can fold
// back onto chord tones).
func Resolve(root pitch.Note, name string) ([]pitch.Note, error) {
	offsets, err := Offsets(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	notes := make([]pitch.Note, 0, len(offsets))
	for _, off := range offsets {
		n := root.Transpose(off)
		if seen[n.Index()] {
			continue
		}
		seen[n.Index()] = true
		notes = append(notes, n)
	}
	return notes, nil
}

// ResolveNames is the octave-stripped form the UI keys highlight colors
// on. Spelling follows the root: a flat root yields flat-side names.
func ResolveNames(rootToken, name string) ([]string, error) {
	root, err := pitch.Parse(rootToken)
	if err != nil {
		return nil, err
	}
	notes, err := Resolve(root, name)
	if err != nil {
		return nil, err
	}
	preferFlat := root.Accidental == pitch.Flat
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name(preferFlat)
	}
	return names, nil
}

// ScaleNames lists the scale vocabulary in sorted order.
func ScaleNames() []string {
	names := util.GetKeys(scalePatterns)
	sort.Strings(names)
	return names
}

// ChordNames lists the chord vocabulary in sorted order.
func ChordNames() []string {
	names := util.GetKeys(chordPatterns)
	sort.Strings(names)
	return names
}
