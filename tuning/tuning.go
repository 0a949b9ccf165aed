// Package tuning resolves human-readable open-string tokens into notes.
package tuning

import (
	"sort"

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/util"
)

// presets are the open-string sets the UI offers out of the box, low
// string first.
var presets = map[string][]string{
	"standard":  {"E2", "A2", "D3", "G3", "B3", "E4"},
	"dropD":     {"D2", "A2", "D3", "G3", "B3", "E4"},
	"openG":     {"D2", "G2", "D3", "G3", "B3", "D4"},
	"dadgad":    {"D2", "A2", "D3", "G3", "A3", "D4"},
	"standard7": {"B1", "E2", "A2", "D3", "G3", "B3", "E4"},
}

// Parse resolves every token or none: the first bad token rejects the
// whole tuning and the caller falls back to a default.
func Parse(tokens []string) ([]pitch.Note, error) {
	notes := make([]pitch.Note, 0, len(tokens))
	for _, tok := range tokens {
		n, err := pitch.Parse(tok)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Preset returns a named open-string set, parsed through the same
// grammar as user input.
func Preset(name string) ([]pitch.Note, bool) {
	tokens, ok := presets[name]
	if !ok {
		return nil, false
	}
	notes, err := Parse(tokens)
	if err != nil {
		// preset tables are static; a parse failure here is a bug
		panic("invalid preset tuning " + name + ": " + err.Error())
	}
	return notes, true
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := util.GetKeys(presets)
	sort.Strings(names)
	return names
}
