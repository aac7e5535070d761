package synth

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidNoteFormat = errors.New("invalid note format")
	ErrIndexOutOfRange   = errors.New("scale degree out of range")
)

// Semitone offsets relative to A. Sharps and flats share entries, so the
// table covers all 17 spellings.
var baseNotes = map[string]int{
	"C": -9,
	"C#": -8, "Db": -8,
	"D": -7,
	"D#": -6, "Eb": -6,
	"E": -5,
	"F": -4,
	"F#": -3, "Gb": -3,
	"G": -2,
	"G#": -1, "Ab": -1,
	"A": 0,
	"A#": 1, "Bb": 1,
	"B": 2,
}

// ParseNote converts a note name to a frequency in Hz, with A4 = 440 Hz.
// A name is a base note, an octave number and an optional signed cents
// suffix, e.g. "A4", "Gb6", "D#4+53.5", "Bb3-12". The cents value may be
// fractional.
func ParseNote(name string) (float64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidNoteFormat)
	}
	base := name[:1]
	if len(name) >= 2 && (name[1] == '#' || name[1] == 'b') {
		base = name[:2]
	}
	semitones, ok := baseNotes[base]
	if !ok {
		return 0, fmt.Errorf("%w: unknown note %q", ErrInvalidNoteFormat, name)
	}

	rest := name[len(base):]
	var cents float64
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		c, err := strconv.ParseFloat(rest[i:], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad cents in %q", ErrInvalidNoteFormat, name)
		}
		cents = c
		rest = rest[:i]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: bad octave in %q", ErrInvalidNoteFormat, name)
	}

	shift := float64(octave-4) + float64(semitones)/12 + cents/1200
	return 440 * math.Pow(2, shift), nil
}

// Interval returns the frequency a number of semitones away from base.
// Semitones may be negative or fractional.
func Interval(base, semitones float64) float64 {
	return base * math.Pow(2, semitones/12)
}

// Scale is an ordered list of semitone offsets relative to a base note.
type Scale []float64

// Degree returns the frequency of the i-th scale degree in the key of base.
func (s Scale) Degree(i int, base float64) (float64, error) {
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s))
	}
	return Interval(base, s[i]), nil
}

// Note is a pitch in Hz paired with a duration in seconds.
type Note struct {
	Freq     float64
	Duration float64
}

// NewNote builds a Note from a note name and a duration.
func NewNote(name string, duration float64) (Note, error) {
	freq, err := ParseNote(name)
	if err != nil {
		return Note{}, err
	}
	return Note{Freq: freq, Duration: duration}, nil
}
