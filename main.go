package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	var (
		out     = flag.String("o", "", "output file (raw 32-bit float samples); empty starts the REPL")
		seconds = flag.Float64("seconds", 5, "length of audio to render")
		rate    = flag.Int("rate", 44100, "sampling rate in Hz")
		half    = flag.Bool("half", false, "decimate: advance time by 2/rate per sample")
		mode    = flag.String("mode", "score", "waveform to render: score, walk, loop or chaos")
		seed    = flag.Int64("seed", 1, "random seed for walk mode")
		score   = flag.String("score", defaultScore, "melody in NOTE:DURATION notation")
		timbre  = flag.String("timbre", "organ", "instrument preset")
		scale   = flag.String("scale", "minor", "scale preset for walk and loop modes")
		base    = flag.String("base", "A3", "base note for walk and loop modes")
		press   = flag.Float64("press", 0.5, "player press time in seconds")
		taxis   = flag.String("taxis", "", "optional file to write the time axis to")
		run     = flag.String("run", "", "file with commands to run before the REPL")
	)
	flag.Parse()

	env := newEnv()
	env.rate = *rate
	env.half = *half
	env.seed = *seed
	env.pressTime = *press

	// The mode command comes last: score resets the mode to "score", and
	// running -mode through eval validates the flag value too.
	setup := []string{
		"timbre " + *timbre,
		"scale " + *scale,
		"base " + *base,
		"score " + *score,
		"mode " + *mode,
	}
	for _, line := range setup {
		if _, err := env.eval(line); err != nil {
			log.Fatal(err)
		}
	}

	if *run != "" {
		f, err := os.Open(*run)
		if err != nil {
			log.Fatal(err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if _, err := env.eval(line); err != nil {
				log.Fatal(err)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}

	if *out == "" {
		if err := repl(env); err != nil && err != io.EOF {
			log.Fatal(err)
		}
		return
	}

	fn, err := env.waveform(env.mode)
	if err != nil {
		log.Fatal(err)
	}
	if err := render(*out, *taxis, fn, env.dt(), *seconds); err != nil {
		log.Fatal(err)
	}
}

const defaultScore = "A3:0.4 C4:0.4 E4:0.4 A4:0.8 G4:0.4 E4:0.4 C4:0.4 A3:0.8"
