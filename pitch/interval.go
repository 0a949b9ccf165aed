package pitch

// intervalShortNames maps a semitone distance in [0,11] to its canonical
// short label.
var intervalShortNames = [12]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7",
}

// IntervalName labels the generic interval class between two notes,
// ignoring octave: the distance is (b - a) mod 12, so the result is the
// ascending interval from a to b.
func IntervalName(a, b Note) string {
	return intervalShortNames[(b.Index()-a.Index()+12)%12]
}

// Semitones is the octave-insensitive distance from a up to b, in
// [0,11].
func Semitones(a, b Note) int {
	return (b.Index() - a.Index() + 12) % 12
}
