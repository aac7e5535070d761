package synth

import "fmt"

var timbres = map[string][]Partial{
	"organ": {
		{Ratio: 1, Amp: 0.6},
		{Ratio: 2, Amp: 0.2},
		{Ratio: 3, Amp: 0.12},
		{Ratio: 4, Amp: 0.08},
	},
	"strings": {
		{Ratio: 1, Amp: 0.5},
		{Ratio: 2, Amp: 0.25},
		{Ratio: 3, Amp: 0.125},
		{Ratio: 4, Amp: 0.0625},
		{Ratio: 5, Amp: 0.0425},
		{Ratio: 6, Amp: 0.02},
	},
	// Inharmonic ratios loosely based on a church bell's lowest modes.
	"bell": {
		{Ratio: 0.5, Amp: 0.3},
		{Ratio: 1, Amp: 0.35},
		{Ratio: 1.2, Amp: 0.15},
		{Ratio: 2, Amp: 0.12},
		{Ratio: 2.66, Amp: 0.08},
	},
	"sine": {
		{Ratio: 1, Amp: 1},
	},
}

// Timbre returns one of the built-in instruments by name.
func Timbre(name string) (*Instrument, error) {
	partials, ok := timbres[name]
	if !ok {
		return nil, fmt.Errorf("unknown timbre: %v", name)
	}
	return NewInstrument(partials...), nil
}

var scales = map[string]Scale{
	"major":      {0, 2, 4, 5, 7, 9, 11},
	"minor":      {0, 2, 3, 5, 7, 8, 10},
	"pentatonic": {0, 2, 4, 7, 9},
	"blues":      {0, 3, 5, 6, 7, 10},
	"chromatic":  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// NamedScale returns one of the built-in scales by name.
func NamedScale(name string) (Scale, error) {
	s, ok := scales[name]
	if !ok {
		return nil, fmt.Errorf("unknown scale: %v", name)
	}
	return s, nil
}
