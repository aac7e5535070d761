package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"

	"github.com/maddyblue/go-dsp/fft"
)

const numPeaks = 5

// spectrum reports the dominant frequencies of a rendered raw file. The
// whole file is transformed in one FFT, so frequency resolution is
// rate/numSamples Hz.
func spectrum(path string, rate int) (string, error) {
	samples, err := loadRaw(path)
	if err != nil {
		return "", err
	}
	if len(samples) < 2 {
		return "", fmt.Errorf("%s: not enough samples", path)
	}

	result := fft.FFTReal(samples)
	mags := make([]float64, len(result)/2)
	for i := range mags {
		mags[i] = cmplx.Abs(result[i])
	}

	peaks := findPeaks(mags, numPeaks)
	binWidth := float64(rate) / float64(len(samples))

	var b strings.Builder
	fmt.Fprintf(&b, "%d samples, resolution %.3f Hz\n", len(samples), binWidth)
	for _, p := range peaks {
		fmt.Fprintf(&b, "%9.2f Hz  %6.1f dB\n", float64(p)*binWidth, 20*math.Log10(mags[p]/float64(len(samples))))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// findPeaks returns the indices of the n largest local maxima, excluding
// the DC bin, largest first.
func findPeaks(mags []float64, n int) []int {
	var peaks []int
	for i := 1; i < len(mags)-1; i++ {
		if mags[i] >= mags[i-1] && mags[i] >= mags[i+1] && mags[i] > 0 {
			peaks = append(peaks, i)
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return mags[peaks[i]] > mags[peaks[j]] })
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

func loadRaw(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	samples := make([]float64, len(data)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		samples[i] = float64(math.Float32frombits(bits))
	}
	return samples, nil
}
