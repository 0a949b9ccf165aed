package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValidTokens(t *testing.T) {
	cases := []struct {
		token  string
		index  int
		octave int
	}{
		{"E2", 4, 2},
		{"A2", 9, 2},
		{"C♯3", 1, 3},
		{"C#3", 1, 3},
		{"B♭1", 10, 1},
		{"Bb1", 10, 1},
		{"Gb0", 6, 0},
		{"F♯10", 6, 10},
		{"C", 0, DefaultOctave},
		{"E♭", 3, DefaultOctave},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			n, err := Parse(c.token)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.index, n.Index())
			assert.Equal(c.octave, n.Octave)
		})
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	bad := []string{"", "H4", "c4", "C##4", "Cx4", "C4b", "C-1", "C 4", "4"}
	for _, token := range bad {
		t.Run("token "+token, func(t *testing.T) {
			_, err := Parse(token)
			assert.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseNormalizesASCIIAccidentals(t *testing.T) {
	assert := assert.New(t)
	ascii, err := Parse("D#5")
	assert.NoError(err)
	unicode, err := Parse("D♯5")
	assert.NoError(err)
	assert.Equal(unicode, ascii)
}

func TestMustParsePanicsOnBadToken(t *testing.T) {
	assert.Panics(t, func() { MustParse("H4") })
}
