package synth

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestStream(t *testing.T) {
	const dt = 0.25
	streamer := Stream(dt, func(tt float64) float64 { return tt })

	buf := make([][2]float64, 4)
	n, ok := streamer.Stream(buf)
	if n != 4 || !ok {
		t.Fatalf("Stream = %v, %v, want 4, true", n, ok)
	}
	want := []float64{0, 0.25, 0.5, 0.75}
	for i, v := range want {
		if buf[i][0] != v || buf[i][1] != v {
			t.Errorf("sample %d = %v, want %v in both channels", i, buf[i], v)
		}
	}

	// Time keeps advancing across calls.
	streamer.Stream(buf)
	if buf[0][0] != 1 {
		t.Errorf("second buffer starts at %v, want 1", buf[0][0])
	}
}

func TestStreamClampsOutput(t *testing.T) {
	streamer := Stream(0.1, func(tt float64) float64 {
		return SafeDiv(0, 0) // NaN on every tick
	})
	buf := make([][2]float64, 8)
	streamer.Stream(buf)
	for i := range buf {
		if math.IsNaN(buf[i][0]) || buf[i][0] != -1 {
			t.Fatalf("sample %d = %v, want NaN clamped to -1", i, buf[i][0])
		}
	}
}

func TestStreamWithTake(t *testing.T) {
	const numSamples = 10
	streamer := beep.Take(numSamples, Stream(0.01, Chaos))
	buf := make([][2]float64, 4)
	var total int
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != numSamples {
		t.Errorf("streamed %d samples through Take, want %d", total, numSamples)
	}
}

func TestVoice(t *testing.T) {
	// Voice must feed the score's pitch of the same tick into the player.
	const dt = 0.5
	score := NewPresetScore([]Note{{Freq: 440, Duration: 1}})
	inst := NewInstrument(Partial{Ratio: 1, Amp: 1})
	player := NewPlayer(inst, NewADSR(0.1, 0.1, 0.5, 0.2), 10)
	voice := Voice(score, player, dt)

	shadowScore := NewPresetScore([]Note{{Freq: 440, Duration: 1}})
	shadowPlayer := NewPlayer(inst, NewADSR(0.1, 0.1, 0.5, 0.2), 10)
	for n := 0; n < 6; n++ {
		tt := float64(n) * dt
		want := shadowPlayer.Sample(tt, shadowScore.NextPitch(dt), dt)
		if got := voice(tt); got != want {
			t.Fatalf("tick %d: voice = %v, want %v", n, got, want)
		}
	}
}
