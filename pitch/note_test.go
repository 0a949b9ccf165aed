package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexHandlesFlats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Note{Class: C, Accidental: Flat, Octave: 4}.Index())
	assert.Equal(0, Note{Class: C, Accidental: Natural, Octave: 4}.Index())
	assert.Equal(1, Note{Class: C, Accidental: Sharp, Octave: 4}.Index())
	assert.Equal(3, Note{Class: E, Accidental: Flat, Octave: 2}.Index())
}

func TestTransposeRoundTrip(t *testing.T) {
	notes := []Note{
		{Class: C, Octave: 4},
		{Class: E, Accidental: Flat, Octave: 2},
		{Class: F, Accidental: Sharp, Octave: 3},
		{Class: B, Octave: 0},
	}
	steps := []int{1, 5, 7, 12, 13, 25, -3, -12, -14}

	for _, n := range notes {
		for _, k := range steps {
			name := fmt.Sprintf("%v by %v", n, k)
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, n.Index(), n.Transpose(k).Transpose(-k).Index())
			})
		}
	}
}

func TestTransposeOctaveConsistency(t *testing.T) {
	assert := assert.New(t)
	n := Note{Class: G, Octave: 3}
	up := n.Transpose(12)
	assert.Equal(n.Index(), up.Index())
	assert.Equal(n.Octave+1, up.Octave)

	down := n.Transpose(-12)
	assert.Equal(n.Index(), down.Index())
	assert.Equal(n.Octave-1, down.Octave)
}

func TestTransposeAcrossOctaveBoundary(t *testing.T) {
	assert := assert.New(t)
	b3 := Note{Class: B, Octave: 3}
	c4 := b3.Transpose(1)
	assert.Equal(0, c4.Index())
	assert.Equal(4, c4.Octave)

	c4down := Note{Class: C, Octave: 4}.Transpose(-1)
	assert.Equal(11, c4down.Index())
	assert.Equal(3, c4down.Octave)
}

func TestTransposePreservesFlatSpelling(t *testing.T) {
	assert := assert.New(t)
	eb := Note{Class: E, Accidental: Flat, Octave: 2}
	assert.Equal(Flat, eb.Transpose(0).Accidental)
	assert.Equal("E♭", eb.Transpose(0).Name(true))
	assert.Equal(Flat, eb.Transpose(7).Accidental)
	assert.Equal("B♭", eb.Transpose(7).Name(true))
}

func TestFromChromaticIndexEnharmonics(t *testing.T) {
	assert := assert.New(t)

	sharp := FromChromaticIndex(1, 4, false)
	assert.Equal("C♯", sharp.Name(false))
	assert.Equal(1, sharp.Index())

	flat := FromChromaticIndex(1, 4, true)
	assert.Equal("D♭", flat.Name(true))
	assert.Equal(1, flat.Index())
}

func TestFromChromaticIndexRoundTrip(t *testing.T) {
	for idx := 0; idx < 12; idx++ {
		for _, preferFlat := range []bool{false, true} {
			n := FromChromaticIndex(idx, 3, preferFlat)
			assert.Equal(t, idx, n.Index())
			assert.Equal(t, 3, n.Octave)
		}
	}
}

func TestNaturalsNeverCarryAccidental(t *testing.T) {
	assert := assert.New(t)
	for _, class := range []Class{C, D, E, F, G, A, B} {
		n := Note{Class: class, Octave: 4}
		assert.Equal(n.Name(false), n.Name(true))
	}
}

func TestMIDINumberAndFrequency(t *testing.T) {
	assert := assert.New(t)

	// octave 0 = MIDI 0-11 by engine convention
	a := Note{Class: A, Octave: 5}
	assert.Equal(69, a.MIDINumber())
	assert.Equal(440.0, a.Frequency(ConcertA))

	c := Note{Class: C, Octave: 5}
	assert.Equal(60, c.MIDINumber())
	assert.Equal(261.63, c.Frequency(ConcertA))

	assert.Equal(442.0, a.Frequency(442))
}

func TestDisplay(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("E2", Note{Class: E, Octave: 2}.Display(false))
	assert.Equal("D♯3", Note{Class: E, Accidental: Flat, Octave: 3}.Display(false))
	assert.Equal("E♭3", Note{Class: E, Accidental: Flat, Octave: 3}.Display(true))
}

func TestEqualIsOctaveInsensitive(t *testing.T) {
	assert := assert.New(t)
	assert.True(Note{Class: C, Octave: 2}.Equal(Note{Class: C, Octave: 6}))
	assert.True(Note{Class: C, Accidental: Sharp, Octave: 4}.Equal(Note{Class: D, Accidental: Flat, Octave: 1}))
	assert.False(Note{Class: C, Octave: 4}.Equal(Note{Class: D, Octave: 4}))
}
