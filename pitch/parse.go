package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a note token the grammar rejected.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse note %q: %s", e.Token, e.Reason)
}

// DefaultOctave is assumed when a token carries no octave digits, e.g.
// the root names handed to the scale resolver.
const DefaultOctave = 4

// nameTable covers all 12 pitch classes through both sharp and flat
// spellings plus the 7 naturals. Keys are Unicode-accidental spellings
// only; ASCII input is normalized before lookup.
var nameTable = map[string]spelling{
	"C": {C, Natural}, "D": {D, Natural}, "E": {E, Natural}, "F": {F, Natural},
	"G": {G, Natural}, "A": {A, Natural}, "B": {B, Natural},
	"C♯": {C, Sharp}, "D♯": {D, Sharp}, "F♯": {F, Sharp}, "G♯": {G, Sharp}, "A♯": {A, Sharp},
	"D♭": {D, Flat}, "E♭": {E, Flat}, "G♭": {G, Flat}, "A♭": {A, Flat}, "B♭": {B, Flat},
}

// Parse turns a token like "E2", "C#3", "B♭" into a Note. The grammar
// is <A-G>[#|♯|b|♭][octave digits]; a missing octave means
// DefaultOctave. Any deviation is a *ParseError.
func Parse(token string) (Note, error) {
	runes := []rune(token)
	if len(runes) == 0 {
		return Note{}, &ParseError{Token: token, Reason: "empty token"}
	}

	letter := runes[0]
	if letter < 'A' || letter > 'G' {
		return Note{}, &ParseError{Token: token, Reason: "letter must be A-G"}
	}

	name := string(letter)
	rest := runes[1:]
	if len(rest) > 0 {
		switch rest[0] {
		case '#', '♯':
			name += "♯"
			rest = rest[1:]
		case 'b', '♭':
			name += "♭"
			rest = rest[1:]
		}
	}

	s, ok := nameTable[name]
	if !ok {
		return Note{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown note name %q", name)}
	}

	octave := DefaultOctave
	if len(rest) > 0 {
		o, err := strconv.Atoi(string(rest))
		if err != nil || strings.ContainsAny(string(rest), "+-") {
			return Note{}, &ParseError{Token: token, Reason: "octave must be digits"}
		}
		octave = o
	}

	return Note{Class: s.class, Accidental: s.accidental, Octave: octave}, nil
}

// MustParse is for static tables and tests where the token is known
// good.
func MustParse(token string) Note {
	n, err := Parse(token)
	if err != nil {
		panic(err.Error())
	}
	return n
}
