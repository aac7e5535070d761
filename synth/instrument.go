package synth

import "math"

// Partial is one sinusoidal component of a timbre: a frequency ratio
// relative to the fundamental and a relative amplitude.
type Partial struct {
	Ratio float64
	Amp   float64
}

// Instrument is an additive synthesizer with a fixed set of partials.
// It is immutable after construction.
type Instrument struct {
	partials []Partial
}

func NewInstrument(partials ...Partial) *Instrument {
	p := make([]Partial, len(partials))
	copy(p, partials)
	return &Instrument{partials: p}
}

// Sample returns the instrument's output at time t for fundamental
// frequency f, scaled by volume. No normalization or clamping is applied;
// the caller keeps volume * sum(amps) in range.
func (i *Instrument) Sample(t, f, volume float64) float64 {
	var sum float64
	for _, p := range i.partials {
		sum += p.Amp * math.Sin(twoPi*f*p.Ratio*t)
	}
	return volume * sum
}
