package pitch

import (
	"fmt"
	"math"
)

// Class is one of the 7 natural letter classes, bound to its fixed
// chromatic offset within the octave.
type Class int

const (
	C Class = 0
	D Class = 2
	E Class = 4
	F Class = 5
	G Class = 7
	A Class = 9
	B Class = 11
)

// Accidental is a signed semitone modifier. The engine only models
// single sharps and flats.
type Accidental int

const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

// Note is an immutable pitch value: letter class + accidental + octave.
// Every operation that changes a Note constructs a fresh one.
type Note struct {
	Class      Class
	Accidental Accidental
	Octave     int
}

// ConcertA is the default A4 reference frequency.
const ConcertA = 440.0

var sharpNames = [12]string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}
var flatNames = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

type spelling struct {
	class      Class
	accidental Accidental
}

var sharpSpellings = [12]spelling{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

var flatSpellings = [12]spelling{
	{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
	{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
}

// Index is the absolute chromatic position within the octave, always in
// [0,11]. The +12 keeps the modulo correct for flats.
func (n Note) Index() int {
	return (int(n.Class) + int(n.Accidental) + 12) % 12
}

// Name returns the canonical label for the note's chromatic index.
// Naturals render without an accidental regardless of preferFlat.
func (n Note) Name(preferFlat bool) string {
	if preferFlat {
		return flatNames[n.Index()]
	}
	return sharpNames[n.Index()]
}

// FromChromaticIndex maps an absolute chromatic index back to a
// canonical (class, accidental) pair. The round trip holds on Index,
// not necessarily on the original accidental spelling.
func FromChromaticIndex(index, octave int, preferFlat bool) Note {
	i := ((index % 12) + 12) % 12
	s := sharpSpellings[i]
	if preferFlat {
		s = flatSpellings[i]
	}
	return Note{Class: s.class, Accidental: s.accidental, Octave: octave}
}

// MIDINumber follows the engine's own octave convention: octave 0 maps
// to 0–11. It is not scientific pitch notation; callers that need a
// different origin add their own offset.
func (n Note) MIDINumber() int {
	return n.Octave*12 + n.Index()
}

// Frequency returns the equal-temperament frequency in Hz for the given
// A4 reference, rounded to 2 decimals.
func (n Note) Frequency(a4 float64) float64 {
	f := a4 * math.Pow(2, (float64(n.MIDINumber())-69)/12)
	return math.Round(f*100) / 100
}

// Transpose returns the note `steps` half-steps away. The result is
// rebuilt through FromChromaticIndex, so repeated transposition
// canonicalizes the accidental spelling; a flat note keeps flat-side
// spelling, everything else spells sharp-side.
func (n Note) Transpose(steps int) Note {
	newMidi := n.MIDINumber() + steps
	newIndex := (newMidi + 1200) % 12
	newOctave := floorDiv(newMidi, 12)
	return FromChromaticIndex(newIndex, newOctave, n.Accidental == Flat)
}

// Display is the label the UI keys highlights on, plus the octave.
func (n Note) Display(preferFlat bool) string {
	return fmt.Sprintf("%s%d", n.Name(preferFlat), n.Octave)
}

// String renders with sharp-side spelling.
func (n Note) String() string {
	return n.Display(false)
}

// Equal compares by chromatic index only. Octave-insensitive equality
// is the system contract; it is what dedupes scale expansions and keys
// the highlight map.
func (n Note) Equal(o Note) bool {
	return n.Index() == o.Index()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
