// Package theory analyzes a user's selected note set: key detection,
// scale degrees, interval quality, triad guessing, and tension scoring.
// Every function is total over its input; insufficient input degrades
// to an explicit "undetected" result instead of an error.
package theory

import (
	"fmt"
	"strings"

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
)

const (
	ModeMajor = "major"
	ModeMinor = "minor"

	ConsonanceConsonant = "consonant"
	ConsonanceDissonant = "dissonant"
	ConsonanceNeutral   = "neutral"
)

// Key is a detected tonal center. Signature holds the scale's note
// names, octave-stripped.
type Key struct {
	Tonic     string   `json:"tonic"`
	Mode      string   `json:"mode"`
	Signature []string `json:"signature"`
	Score     float64  `json:"score"`
}

// ScaleDegree labels one input note's position within the detected key.
type ScaleDegree struct {
	Note    string `json:"note"`
	Degree  int    `json:"degree"`
	Name    string `json:"name"`
	Quality string `json:"quality"`
	Roman   string `json:"roman"`
}

// Interval is one unordered pair of input notes with its quality.
type Interval struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Semitones  int    `json:"semitones"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Consonance string `json:"consonance"`
}

// Chord is the rudimentary triad guess over the first three distinct
// input notes.
type Chord struct {
	Detected bool   `json:"detected"`
	Root     string `json:"root,omitempty"`
	Quality  string `json:"quality,omitempty"`
}

// Analysis is the full report handed to the UI.
type Analysis struct {
	Key         *Key          `json:"key"`
	Degrees     []ScaleDegree `json:"degrees"`
	Intervals   []Interval    `json:"intervals"`
	Chord       Chord         `json:"chord"`
	Tension     float64       `json:"tension"`
	Suggestions []string      `json:"suggestions"`
}

// detectThreshold: best-fit scores at or below this report no key.
const detectThreshold = 0.3

// degreeFunctions is the 7-entry major-scale function table. It is
// applied regardless of mode: roman numerals are read off scale
// position, minor-key qualities are not independently modeled.
var degreeFunctions = [7]struct {
	name    string
	quality string
	roman   string
}{
	{"Tonic", "major", "I"},
	{"Supertonic", "minor", "ii"},
	{"Mediant", "minor", "iii"},
	{"Subdominant", "major", "IV"},
	{"Dominant", "major", "V"},
	{"Submediant", "minor", "vi"},
	{"Leading Tone", "diminished", "vii°"},
}

// intervalQualities covers semitone distances 0-12. Distance 12 is kept
// for completeness even though octave-insensitive distances stay under
// it.
var intervalQualities = [13]struct {
	name       string
	short      string
	consonance string
}{
	{"Unison", "P1", ConsonanceConsonant},
	{"Minor Second", "m2", ConsonanceDissonant},
	{"Major Second", "M2", ConsonanceDissonant},
	{"Minor Third", "m3", ConsonanceConsonant},
	{"Major Third", "M3", ConsonanceConsonant},
	{"Perfect Fourth", "P4", ConsonanceNeutral},
	{"Tritone", "TT", ConsonanceDissonant},
	{"Perfect Fifth", "P5", ConsonanceConsonant},
	{"Minor Sixth", "m6", ConsonanceConsonant},
	{"Major Sixth", "M6", ConsonanceConsonant},
	{"Minor Seventh", "m7", ConsonanceDissonant},
	{"Major Seventh", "M7", ConsonanceDissonant},
	{"Octave", "P8", ConsonanceConsonant},
}

// Analyze runs the whole pipeline over a note-name list.
func Analyze(noteNames []string) Analysis {
	var a Analysis
	a.Key = DetectKey(noteNames)
	a.Degrees = ScaleDegrees(noteNames, a.Key)
	a.Intervals = PairwiseIntervals(noteNames)
	a.Chord = AnalyzeChord(noteNames)
	a.Tension = HarmonicTension(noteNames)
	a.Suggestions = Suggestions(&a, noteNames)
	return a
}

// parseAll drops tokens that fail the note grammar; analysis inputs are
// expected to be pre-validated, so a bad token simply does not count.
func parseAll(noteNames []string) []pitch.Note {
	notes := make([]pitch.Note, 0, len(noteNames))
	for _, name := range noteNames {
		n, err := pitch.Parse(name)
		if err != nil {
			continue
		}
		notes = append(notes, n)
	}
	return notes
}

// candidateKey pairs a tonic spelling with the mode's scale pattern.
type candidateKey struct {
	tonic string
	mode  string
}

// candidates enumerates all 24 major/minor keys in a fixed order:
// all majors in chromatic tonic order, then all minors. The order is
// the tie-break: first candidate at equal score wins.
var candidates = buildCandidates()

func buildCandidates() []candidateKey {
	var res []candidateKey
	for _, mode := range []string{ModeMajor, ModeMinor} {
		for idx := 0; idx < 12; idx++ {
			tonic := pitch.FromChromaticIndex(idx, pitch.DefaultOctave, false)
			res = append(res, candidateKey{tonic: tonic.Name(false), mode: mode})
		}
	}
	return res
}

// DetectKey scores the input against every major and minor scale and
// returns the best fit, or nil when nothing clears the threshold.
// Score = fraction of note instances inside the scale, +0.2 when the
// tonic is present, +0.1 when the scale's fifth degree is present.
func DetectKey(noteNames []string) *Key {
	notes := parseAll(noteNames)
	if len(notes) == 0 {
		return nil
	}

	var best *Key
	for _, cand := range candidates {
		pattern := "diatonicMajor"
		if cand.mode == ModeMinor {
			pattern = "diatonicMinor"
		}
		scaleNotes, err := scale.Resolve(pitch.MustParse(cand.tonic), pattern)
		if err != nil {
			continue
		}

		inScale := make(map[int]bool, len(scaleNotes))
		for _, sn := range scaleNotes {
			inScale[sn.Index()] = true
		}

		matched := 0
		tonicPresent := false
		fifthPresent := false
		tonicIdx := scaleNotes[0].Index()
		fifthIdx := scaleNotes[0].Transpose(7).Index()
		for _, n := range notes {
			if inScale[n.Index()] {
				matched++
			}
			if n.Index() == tonicIdx {
				tonicPresent = true
			}
			if n.Index() == fifthIdx {
				fifthPresent = true
			}
		}

		score := float64(matched) / float64(len(notes))
		if tonicPresent {
			score += 0.2
		}
		if fifthPresent {
			score += 0.1
		}

		if best == nil || score > best.Score {
			signature := make([]string, len(scaleNotes))
			for i, sn := range scaleNotes {
				signature[i] = sn.Name(false)
			}
			best = &Key{Tonic: cand.tonic, Mode: cand.mode, Signature: signature, Score: score}
		}
	}

	if best == nil || best.Score <= detectThreshold {
		return nil
	}
	return best
}

// ScaleDegrees labels each input note that falls inside the detected
// key's scale. Duplicate pitches are reported once, in input order.
func ScaleDegrees(noteNames []string, key *Key) []ScaleDegree {
	if key == nil {
		return nil
	}

	degreeByIndex := make(map[int]int, len(key.Signature))
	for i, name := range key.Signature {
		n, err := pitch.Parse(name)
		if err != nil {
			continue
		}
		degreeByIndex[n.Index()] = i
	}

	var res []ScaleDegree
	seen := make(map[int]bool)
	for _, name := range noteNames {
		n, err := pitch.Parse(name)
		if err != nil {
			continue
		}
		if seen[n.Index()] {
			continue
		}
		seen[n.Index()] = true
		deg, ok := degreeByIndex[n.Index()]
		if !ok || deg >= len(degreeFunctions) {
			continue
		}
		fn := degreeFunctions[deg]
		res = append(res, ScaleDegree{
			Note:    key.Signature[deg],
			Degree:  deg + 1,
			Name:    fn.name,
			Quality: fn.quality,
			Roman:   fn.roman,
		})
	}
	return res
}

// PairwiseIntervals reports every position pair (i<j) in input order
// with its octave-insensitive interval quality.
func PairwiseIntervals(noteNames []string) []Interval {
	notes := parseAll(noteNames)
	var res []Interval
	for i := 0; i < len(notes); i++ {
		for j := i + 1; j < len(notes); j++ {
			dist := pitch.Semitones(notes[i], notes[j])
			q := intervalQualities[dist]
			res = append(res, Interval{
				From:       notes[i].Name(false),
				To:         notes[j].Name(false),
				Semitones:  dist,
				Name:       q.name,
				ShortName:  q.short,
				Consonance: q.consonance,
			})
		}
	}
	return res
}

// AnalyzeChord guesses a triad from the first three distinct pitches in
// input order. Root/third/fifth are positional, not sorted by pitch
// height; with fewer than three distinct pitches there is no chord.
func AnalyzeChord(noteNames []string) Chord {
	notes := parseAll(noteNames)
	var distinct []pitch.Note
	seen := make(map[int]bool)
	for _, n := range notes {
		if seen[n.Index()] {
			continue
		}
		seen[n.Index()] = true
		distinct = append(distinct, n)
		if len(distinct) == 3 {
			break
		}
	}
	if len(distinct) < 3 {
		return Chord{Detected: false}
	}

	third := pitch.Semitones(distinct[0], distinct[1])
	fifth := pitch.Semitones(distinct[0], distinct[2])

	quality := "unknown"
	switch {
	case third == 4 && fifth == 7:
		quality = "major"
	case third == 3 && fifth == 7:
		quality = "minor"
	case third == 3 && fifth == 6:
		quality = "diminished"
	}

	return Chord{Detected: true, Root: distinct[0].Name(false), Quality: quality}
}

// HarmonicTension scores the pairwise intervals: +1 per dissonance,
// -0.5 per consonance, neutral free, offset by +5 and clamped to
// [0,10].
func HarmonicTension(noteNames []string) float64 {
	tension := 5.0
	for _, iv := range PairwiseIntervals(noteNames) {
		switch iv.Consonance {
		case ConsonanceDissonant:
			tension += 1
		case ConsonanceConsonant:
			tension -= 0.5
		}
	}
	if tension < 0 {
		return 0
	}
	if tension > 10 {
		return 10
	}
	return tension
}

// Suggestions turns the analysis into short textual hints for the UI.
func Suggestions(a *Analysis, noteNames []string) []string {
	var res []string

	if a.Key == nil {
		res = append(res, "No clear key detected. Try adding more notes from a single scale.")
	} else {
		tonicPresent := false
		tonic, err := pitch.Parse(a.Key.Tonic)
		if err == nil {
			for _, n := range parseAll(noteNames) {
				if n.Equal(tonic) {
					tonicPresent = true
					break
				}
			}
		}
		if !tonicPresent {
			res = append(res, fmt.Sprintf("The tonic %s of %s %s is missing; adding it would anchor the key.",
				a.Key.Tonic, a.Key.Tonic, a.Key.Mode))
		}
	}

	if a.Tension > 7 {
		res = append(res, fmt.Sprintf("Harmonic tension is high (%.1f/10). Consider resolving some dissonant intervals.", a.Tension))
	} else if a.Tension < 3 {
		res = append(res, fmt.Sprintf("Harmonic tension is low (%.1f/10). Color tones like sevenths or seconds could add interest.", a.Tension))
	}

	var dissonant []string
	for _, iv := range a.Intervals {
		if iv.Consonance == ConsonanceDissonant {
			dissonant = append(dissonant, iv.Name)
		}
	}
	if len(dissonant) > 0 {
		res = append(res, "Dissonant intervals present: "+strings.Join(dissonant, ", ")+".")
	}

	return res
}
