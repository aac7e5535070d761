package main

import (
	"fmt"

	"github.com/tonewheel/tonewheel/mel"
	"github.com/tonewheel/tonewheel/synth"
)

type command struct {
	name  string
	run   func(*env, []mel.Node) (string, error)
	arity int // arityAny leaves the argument count to the command
}

const arityAny = -1

var commands = []command{
	{"env", envCommand, 4},
	{"press", pressCommand, 1},
	{"rate", rateCommand, 1},
	{"timbre", timbreCommand, 1},
	{"scale", scaleCommand, 1},
	{"base", baseCommand, 1},
	{"seed", seedCommand, 1},
	{"score", scoreCommand, arityAny},
	{"walk", walkCommand, arityAny},
	{"loop", loopCommand, 1},
	{"chaos", chaosCommand, 0},
	{"mode", modeCommand, 1},
	{"note", noteCommand, 1},
	{"render", renderCommand, 2},
	{"spectrum", spectrumCommand, 1},
}

func envCommand(e *env, args []mel.Node) (string, error) {
	var attack, decay, sustain, release float64
	if err := readArgs(args, &attack, &decay, &sustain, &release); err != nil {
		return "", err
	}
	for _, d := range []float64{attack, decay, release} {
		if d < 0.0005 || d > 15 {
			return "", fmt.Errorf("envelope time is out of range 0.0005 - 15: %v", d)
		}
	}
	if sustain < 0 || sustain > 1 {
		return "", fmt.Errorf("sustain level is out of range 0 - 1: %v", sustain)
	}
	e.attack, e.decay, e.sustain, e.release = attack, decay, sustain, release
	return "", nil
}

func pressCommand(e *env, args []mel.Node) (string, error) {
	var press float64
	if err := readArgs(args, &press); err != nil {
		return "", err
	}
	if press <= 0 {
		return "", fmt.Errorf("press time must be positive: %v", press)
	}
	e.pressTime = press
	return "", nil
}

func rateCommand(e *env, args []mel.Node) (string, error) {
	var rate int
	if err := readArgs(args, &rate); err != nil {
		return "", err
	}
	if rate <= 0 {
		return "", fmt.Errorf("sampling rate must be positive: %v", rate)
	}
	e.rate = rate
	return "", nil
}

func timbreCommand(e *env, args []mel.Node) (string, error) {
	var name string
	if err := readArgs(args, &name); err != nil {
		return "", err
	}
	instrument, err := synth.Timbre(name)
	if err != nil {
		return "", err
	}
	e.instrument = instrument
	return "", nil
}

func scaleCommand(e *env, args []mel.Node) (string, error) {
	var name string
	if err := readArgs(args, &name); err != nil {
		return "", err
	}
	scale, err := synth.NamedScale(name)
	if err != nil {
		return "", err
	}
	e.scale = scale
	return "", nil
}

func baseCommand(e *env, args []mel.Node) (string, error) {
	var name string
	if err := readArgs(args, &name); err != nil {
		return "", err
	}
	freq, err := synth.ParseNote(name)
	if err != nil {
		return "", err
	}
	e.baseFreq = freq
	return "", nil
}

func seedCommand(e *env, args []mel.Node) (string, error) {
	var seed int
	if err := readArgs(args, &seed); err != nil {
		return "", err
	}
	e.seed = int64(seed)
	return "", nil
}

// scoreCommand replaces the melody. Arguments are NOTE:DURATION pairs;
// the note "r" is a rest.
func scoreCommand(e *env, args []mel.Node) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("need at least one NOTE:DURATION")
	}
	notes := make([]synth.Note, 0, len(args))
	for _, arg := range args {
		nl, ok := arg.(mel.NoteLen)
		if !ok {
			return "", fmt.Errorf("expected NOTE:DURATION, got %v", arg)
		}
		if nl.Note == "r" {
			notes = append(notes, synth.Note{Duration: nl.Duration})
			continue
		}
		note, err := synth.NewNote(nl.Note, nl.Duration)
		if err != nil {
			return "", err
		}
		notes = append(notes, note)
	}
	e.notes = notes
	e.mode = "score"
	return "", nil
}

// walkCommand switches to the random walk; with no arguments it keeps
// the current duration bounds.
func walkCommand(e *env, args []mel.Node) (string, error) {
	if len(args) > 0 {
		var min, max float64
		if err := readArgs(args, &min, &max); err != nil {
			return "", err
		}
		if min <= 0 || max < min {
			return "", fmt.Errorf("need 0 < min <= max, got %v and %v", min, max)
		}
		e.minDur, e.maxDur = min, max
	}
	e.mode = "walk"
	return "", nil
}

func chaosCommand(e *env, args []mel.Node) (string, error) {
	e.mode = "chaos"
	return "", nil
}

func loopCommand(e *env, args []mel.Node) (string, error) {
	var interval float64
	if err := readArgs(args, &interval); err != nil {
		return "", err
	}
	if interval <= 0 {
		return "", fmt.Errorf("interval must be positive: %v", interval)
	}
	e.interval = interval
	e.mode = "loop"
	return "", nil
}

func modeCommand(e *env, args []mel.Node) (string, error) {
	var mode string
	if err := readArgs(args, &mode); err != nil {
		return "", err
	}
	if _, err := e.waveform(mode); err != nil {
		return "", err
	}
	e.mode = mode
	return "", nil
}

func noteCommand(e *env, args []mel.Node) (string, error) {
	var name string
	if err := readArgs(args, &name); err != nil {
		return "", err
	}
	freq, err := synth.ParseNote(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.4f Hz", freq), nil
}

func renderCommand(e *env, args []mel.Node) (string, error) {
	var file string
	var seconds float64
	if err := readArgs(args, &file, &seconds); err != nil {
		return "", err
	}
	if seconds <= 0 {
		return "", fmt.Errorf("length must be positive: %v", seconds)
	}
	fn, err := e.waveform(e.mode)
	if err != nil {
		return "", err
	}
	if err := render(file, "", fn, e.dt(), seconds); err != nil {
		return "", err
	}
	return file, nil
}

func spectrumCommand(e *env, args []mel.Node) (string, error) {
	var file string
	if err := readArgs(args, &file); err != nil {
		return "", err
	}
	return spectrum(file, e.rate)
}
