package synth

import "math"

// Chaos is a standalone waveform: a 220 Hz carrier whose phase is
// modulated by bit-level interference between two slow sinusoids. The two
// sine values are narrowed to IEEE-754 single precision, their bit
// patterns ANDed, and the result reinterpreted as a float again. The
// narrowing must stay exactly 32-bit for output parity.
func Chaos(t float64) float64 {
	a := math.Float32bits(float32(math.Sin(t/5 + 0.3)))
	b := math.Float32bits(float32(math.Sin(t/3 + 1.4)))
	m := float64(math.Float32frombits(a & b))
	return math.Sin(twoPi * 220 * t * m)
}
