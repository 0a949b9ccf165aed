package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiecai/fretforge/pitch"
)

func TestResolveCMajor(t *testing.T) {
	names, err := ResolveNames("C", "diatonicMajor")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, names)
}

func TestResolveFlatRootSpellsFlat(t *testing.T) {
	names, err := ResolveNames("E♭", "diatonicMajor")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(names, 7)
	assert.Equal("E♭", names[0])

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(seen[name], "duplicate note %v", name)
		seen[name] = true
	}
}

func TestResolveAMinorChord(t *testing.T) {
	names, err := ResolveNames("A", "min")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"A", "C", "E"}, names)
}

func TestResolveUnknownPattern(t *testing.T) {
	_, err := ResolveNames("C", "notAScale")
	assert.Error(t, err)

	var unknownErr *UnknownPatternError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "notAScale", unknownErr.Name)
}

func TestResolveBadRoot(t *testing.T) {
	_, err := ResolveNames("H", "diatonicMajor")

	var parseErr *pitch.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestResolveDeduplicatesWrappedExtensions(t *testing.T) {
	// maj9 reaches past the octave; the ninth folds back to a new
	// pitch class, so all five offsets survive
	names, err := ResolveNames("C", "maj9")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C", "E", "G", "B", "D"}, names)
}

func TestResolveChromaticCoversOctave(t *testing.T) {
	notes, err := Resolve(pitch.MustParse("C"), "chromatic")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(notes, 12)
}

func TestPatternTablesStartAtRoot(t *testing.T) {
	for _, name := range append(ScaleNames(), ChordNames()...) {
		offsets, err := Offsets(name)
		assert.NoError(t, err)
		assert.Equal(t, 0, offsets[0], "pattern %v must start at the root", name)
		for i := 1; i < len(offsets); i++ {
			assert.Greater(t, offsets[i], offsets[i-1], "pattern %v offsets must ascend", name)
		}
	}
}

func TestVocabularyIsStable(t *testing.T) {
	assert := assert.New(t)
	assert.Len(ScaleNames(), 27)
	assert.Len(ChordNames(), 16)
	assert.Contains(ScaleNames(), "phrygianDominant")
	assert.Contains(ChordNames(), "m7b5")
	assert.Contains(ChordNames(), "7")
}
