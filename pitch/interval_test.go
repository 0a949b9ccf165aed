package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalName(t *testing.T) {
	cases := []struct {
		a, b string
		name string
	}{
		{"C", "C", "P1"},
		{"C", "G", "P5"},
		{"C", "F♯", "TT"},
		{"C", "E♭", "m3"},
		{"G", "C", "P4"}, // ascending distance wraps
		{"B", "C", "m2"},
		{"C4", "G7", "P5"}, // octave-insensitive
	}

	for _, c := range cases {
		t.Run(c.a+" to "+c.b, func(t *testing.T) {
			assert.Equal(t, c.name, IntervalName(MustParse(c.a), MustParse(c.b)))
		})
	}
}

func TestSemitonesStaysInRange(t *testing.T) {
	notes := []string{"C", "E♭", "F♯", "B"}
	for _, a := range notes {
		for _, b := range notes {
			d := Semitones(MustParse(a), MustParse(b))
			assert.GreaterOrEqual(t, d, 0)
			assert.LessOrEqual(t, d, 11)
		}
	}
}
