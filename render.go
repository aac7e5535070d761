package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gopxl/beep"

	"github.com/tonewheel/tonewheel/synth"
)

const renderBufferSize = 512

// render writes total seconds of the waveform to path as raw little-endian
// 32-bit float samples, one per tick of dt. If taxisPath is non-empty the
// matching time values are written there in the same format, for external
// plotting tools.
func render(path, taxisPath string, fn synth.SampleFunc, dt, total float64) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	var tw *bufio.Writer
	var taxisW io.Writer // stays nil (also as an interface) when unused
	if taxisPath != "" {
		taxis, err := os.Create(taxisPath)
		if err != nil {
			return err
		}
		defer taxis.Close()
		tw = bufio.NewWriter(taxis)
		taxisW = tw
	}

	numSamples := int(math.Ceil(total / dt))
	if err := renderSamples(w, taxisW, fn, dt, numSamples, os.Stderr); err != nil {
		return err
	}
	if tw != nil {
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return w.Flush()
}

// renderSamples drains a beep pipeline built around fn, writing one sample
// per tick and a carriage-return progress line to progress.
func renderSamples(w, tw io.Writer, fn synth.SampleFunc, dt float64, numSamples int, progress io.Writer) error {
	streamer := beep.Take(numSamples, synth.Stream(dt, fn))
	buf := make([][2]float64, renderBufferSize)
	var written int
	for {
		fmt.Fprintf(progress, "\rrendering ... %6.2f%%", float64(written)/float64(numSamples)*100)
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			if err := putSample(w, float32(buf[i][0])); err != nil {
				return err
			}
			if tw != nil {
				if err := putSample(tw, float32(float64(written+i)*dt)); err != nil {
					return err
				}
			}
		}
		written += n
		if !ok {
			break
		}
	}
	fmt.Fprintf(progress, "\rrendering ... 100.00%%\n")
	return nil
}

func putSample(w io.Writer, v float32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	_, err := w.Write(b[:])
	return err
}
