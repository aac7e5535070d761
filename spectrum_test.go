package main

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tonewheel/tonewheel/synth"
)

func TestSpectrum(t *testing.T) {
	// One second at 1024 Hz puts a 100 Hz and a 200 Hz partial on exact
	// FFT bins, so they must come out as the two loudest peaks.
	const rate = 1024
	path := filepath.Join(t.TempDir(), "audio.raw")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := bufio.NewWriter(f)
	for n := 0; n < rate; n++ {
		tt := float64(n) / rate
		v := 0.5*synth.Sine(tt, 100) + 0.25*synth.Sine(tt, 200)
		if err := putSample(w, float32(v)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	report, err := spectrum(path, rate)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(report, "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected report: %q", report)
	}
	if !strings.Contains(lines[1], "100.00 Hz") {
		t.Errorf("loudest peak line = %q, want 100.00 Hz", lines[1])
	}
	if !strings.Contains(lines[2], "200.00 Hz") {
		t.Errorf("second peak line = %q, want 200.00 Hz", lines[2])
	}
}

func TestFindPeaks(t *testing.T) {
	mags := []float64{0, 1, 0, 5, 0, 3, 0}
	peaks := findPeaks(mags, 2)
	if len(peaks) != 2 || peaks[0] != 3 || peaks[1] != 5 {
		t.Errorf("findPeaks = %v, want [3 5]", peaks)
	}
}

func TestLoadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.raw")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := bufio.NewWriter(f)
	want := []float64{0, 0.5, -1, 0.25}
	for _, v := range want {
		if err := putSample(w, float32(v)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := loadRaw(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-7 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}
