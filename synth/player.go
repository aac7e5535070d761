package synth

// Player strikes an enveloped instrument in a repeating press/release
// cycle of fixed length. The cycle is not synchronized with any Score:
// re-trigger the player from the driver if note-aligned articulation is
// wanted.
type Player struct {
	instrument *Instrument
	envelope   Envelope
	pressTime  float64

	elapsed float64
}

func NewPlayer(instrument *Instrument, envelope Envelope, pressTime float64) *Player {
	return &Player{
		instrument: instrument,
		envelope:   envelope,
		pressTime:  pressTime,
	}
}

// Sample returns one instrument sample at time t for frequency freq,
// pressing the envelope whenever it is released and releasing it again
// after pressTime seconds.
func (p *Player) Sample(t, freq, dt float64) float64 {
	if !p.envelope.Pressed() {
		p.envelope.Press()
		p.elapsed = 0
	}
	p.elapsed += dt
	if p.elapsed > p.pressTime {
		p.elapsed = 0
		p.envelope.Unpress()
	}
	return p.instrument.Sample(t, freq, p.envelope.Amplitude(dt))
}
