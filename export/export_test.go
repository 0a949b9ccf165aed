package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/louiecai/fretforge/pitch"
	"github.com/louiecai/fretforge/scale"
)

func resolveOrFatal(t *testing.T, root, pattern string) []pitch.Note {
	notes, err := scale.Resolve(pitch.MustParse(root), pattern)
	if err != nil {
		t.Fatal(err)
	}
	return notes
}

func readSMF(t *testing.T, path string) *smf.SMF {
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s, err := smf.ReadFrom(f)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWriteSequenceProducesReadableSMF(t *testing.T) {
	notes := resolveOrFatal(t, "C", "pentatonicMajor")
	path := filepath.Join(t.TempDir(), "scale.mid")

	assert := assert.New(t)
	assert.NoError(WriteSequence(path, notes, 120))

	s := readSMF(t, path)
	assert.Len(s.Tracks, 1)
	// tempo + 5 note on/off pairs + end of track
	assert.Len(s.Tracks[0], 12)
}

func TestWriteChordProducesReadableSMF(t *testing.T) {
	notes := resolveOrFatal(t, "A", "min")
	path := filepath.Join(t.TempDir(), "chord.mid")

	assert := assert.New(t)
	assert.NoError(WriteChord(path, notes, 90))

	s := readSMF(t, path)
	assert.Len(s.Tracks, 1)
	// tempo + 3 note ons + 3 note offs + end of track
	assert.Len(s.Tracks[0], 8)
}

func TestWriteSequenceRejectsEmpty(t *testing.T) {
	assert.Error(t, WriteSequence(filepath.Join(t.TempDir(), "x.mid"), nil, 120))
}
