package synth

type envelopeState int

const (
	stateIdle envelopeState = iota
	stateAttack
	stateDecay
	stateSustain
	stateRelease
)

// Envelope is a per-voice amplitude control driven once per sample tick.
type Envelope interface {
	// Amplitude returns the amplitude for the current tick and advances
	// the envelope's internal time by dt.
	Amplitude(dt float64) float64
	Press()
	Unpress()
	Pressed() bool
}

// ADSR is a linear attack/decay/sustain/release envelope.
//
// Stage boundaries are checked against the elapsed time before it is
// incremented, so each stage runs exactly one tick past its nominal
// length. Unpress is only observed in the sustain stage: a note released
// during attack or decay keeps rising/falling until sustain is reached.
// Both quirks are kept for output parity with existing recordings.
type ADSR struct {
	attack  float64
	decay   float64
	sustain float64 // amplitude in [0, 1], not a duration
	release float64

	state   envelopeState
	elapsed float64
	pressed bool
}

func NewADSR(attack, decay, sustain, release float64) *ADSR {
	return &ADSR{
		attack:  attack,
		decay:   decay,
		sustain: sustain,
		release: release,
	}
}

// Press restarts the attack stage, whatever the current stage is.
func (e *ADSR) Press() {
	e.state = stateAttack
	e.elapsed = 0
	e.pressed = true
}

// Unpress marks the note as released. The transition to the release stage
// happens on the next sustain tick.
func (e *ADSR) Unpress() {
	e.pressed = false
}

func (e *ADSR) Pressed() bool { return e.pressed }

// Amplitude returns the amplitude for the current tick and then advances
// the envelope by dt.
func (e *ADSR) Amplitude(dt float64) float64 {
	var ret float64
	switch e.state {
	case stateIdle:
		return 0
	case stateAttack:
		ret = e.elapsed / e.attack
		if e.elapsed > e.attack {
			e.elapsed = 0
			e.state = stateDecay
			return 1
		}
	case stateDecay:
		ret = 1 - (1-e.sustain)*e.elapsed/e.decay
		if e.elapsed > e.decay {
			e.elapsed = 0
			e.state = stateSustain
			return e.sustain
		}
	case stateSustain:
		if e.pressed {
			return e.sustain
		}
		e.state = stateRelease
		e.elapsed = 0
		return e.sustain
	case stateRelease:
		ret = e.sustain * (1 - e.elapsed/e.release)
		if e.elapsed > e.release {
			e.elapsed = 0
			e.state = stateIdle
			return 0
		}
	}
	e.elapsed += dt
	return ret
}
