// Package synth generates audio samples as deterministic functions of
// time: oscillator primitives, a note/pitch model, ADSR envelopes, an
// additive-synthesis instrument and the score variants that decide which
// pitch sounds when.
package synth

import (
	"math"
	"math/cmplx"
)

const twoPi = 2 * math.Pi

// Sine returns a sine sample at time t and frequency f.
func Sine(t, f float64) float64 {
	return math.Sin(twoPi * f * t)
}

// Cosine returns a cosine sample at time t and frequency f.
func Cosine(t, f float64) float64 {
	return math.Cos(twoPi * f * t)
}

// Square returns +1 while the sine at (t, f) is non-negative and -1 otherwise.
func Square(t, f float64) float64 {
	if Sine(t, f) >= 0 {
		return 1
	}
	return -1
}

// Sawtooth ramps from -1 up to 1 once per cycle. The phase wrap uses a
// floored modulo so the result stays in [-1, 1) for negative t as well.
func Sawtooth(t, f float64) float64 {
	x := math.Mod(2*f*t, 2)
	if x < 0 {
		x += 2
	}
	return x - 1
}

// SafeDiv divides num by den without ever panicking: num/0 is +Inf or -Inf
// depending on the sign of num, and 0/0 is NaN.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		switch {
		case num > 0:
			return math.Inf(1)
		case num < 0:
			return math.Inf(-1)
		default:
			return math.NaN()
		}
	}
	return num / den
}

// Tangent computes Sine(t, f1) / Cosine(t, f2) via SafeDiv. Pass the same
// frequency twice for a plain tangent wave.
func Tangent(t, f1, f2 float64) float64 {
	return SafeDiv(Sine(t, f1), Cosine(t, f2))
}

// Clamp limits x to [-1, 1]. NaN maps to -1 so that the value written to
// the sink is always finite. This is the only place where NaN is absorbed;
// intermediate oscillator math lets it propagate.
func Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return -1
	}
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Mod returns the non-negative remainder of |a| by |b|, or 0 when b is 0.
func Mod(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return math.Mod(math.Abs(a), math.Abs(b))
}

// ModC is Mod over the magnitudes of complex inputs.
func ModC(a, b complex128) float64 {
	return Mod(cmplx.Abs(a), cmplx.Abs(b))
}
