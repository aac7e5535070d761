package synth

import "github.com/gopxl/beep"

// SampleFunc is a waveform as a pure function of time.
type SampleFunc func(t float64) float64

// Stream adapts a SampleFunc to a beep.Streamer, advancing time by dt per
// sample. The mono value is written to both channels; no mixing happens.
// Samples pass through Clamp so NaN never reaches the sink.
func Stream(dt float64, fn SampleFunc) beep.Streamer {
	var t float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := Clamp(fn(t))
			samples[i][0] = v
			samples[i][1] = v
			t += dt
		}
		return len(samples), true
	})
}

// Voice couples a Score with a Player: each tick the score picks the
// active pitch and the player turns it into a sample.
func Voice(score Score, player *Player, dt float64) SampleFunc {
	return func(t float64) float64 {
		return player.Sample(t, score.NextPitch(dt), dt)
	}
}
