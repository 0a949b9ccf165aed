package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louiecai/fretforge/pitch"
)

func TestParseStandardTuning(t *testing.T) {
	notes, err := Parse([]string{"E2", "A2", "D3", "G3", "B3", "E4"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(notes, 6)
	assert.Equal("E2", notes[0].Display(false))
	assert.Equal("E4", notes[5].Display(false))
}

func TestParseIsAllOrNothing(t *testing.T) {
	notes, err := Parse([]string{"E2", "H4", "D3"})

	assert := assert.New(t)
	assert.Nil(notes)

	var parseErr *pitch.ParseError
	assert.ErrorAs(err, &parseErr)
	assert.Equal("H4", parseErr.Token)
}

func TestPresets(t *testing.T) {
	assert := assert.New(t)

	standard, ok := Preset("standard")
	assert.True(ok)
	assert.Len(standard, 6)

	seven, ok := Preset("standard7")
	assert.True(ok)
	assert.Len(seven, 7)
	assert.Equal("B1", seven[0].Display(false))

	dropD, ok := Preset("dropD")
	assert.True(ok)
	assert.Equal("D2", dropD[0].Display(false))

	_, ok = Preset("ukulele")
	assert.False(ok)
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	assert.Contains(t, names, "standard")
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
