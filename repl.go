package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tonewheel/tonewheel/mel"
	"github.com/tonewheel/tonewheel/synth"
)

// env holds the voice configuration built up by flags and REPL commands.
// A waveform is assembled from it on every render, so changed settings
// take effect on the next render only.
type env struct {
	rate int
	half bool
	mode string
	seed int64

	attack    float64
	decay     float64
	sustain   float64
	release   float64
	pressTime float64

	instrument *synth.Instrument
	notes      []synth.Note
	scale      synth.Scale
	baseFreq   float64

	minDur   float64
	maxDur   float64
	interval float64
}

func newEnv() *env {
	return &env{
		rate:      44100,
		mode:      "score",
		seed:      1,
		attack:    0.02,
		decay:     0.05,
		sustain:   0.7,
		release:   0.2,
		pressTime: 0.5,
		minDur:    0.04,
		maxDur:    2,
		interval:  0.25,
	}
}

func (e *env) dt() float64 {
	if e.half {
		return 2 / float64(e.rate)
	}
	return 1 / float64(e.rate)
}

// waveform assembles the sample function for one of the generator modes.
// All modes except chaos run the Score -> Player pipeline.
func (e *env) waveform(mode string) (synth.SampleFunc, error) {
	if mode == "chaos" {
		return synth.Chaos, nil
	}
	if e.instrument == nil {
		return nil, errors.New("no timbre selected")
	}
	var score synth.Score
	switch mode {
	case "score":
		score = synth.NewPresetScore(e.notes)
	case "walk":
		if len(e.scale) == 0 {
			return nil, errors.New("no scale selected")
		}
		rnd := rand.New(rand.NewSource(e.seed))
		score = synth.NewScaleRandomPlayer(rnd, e.scale,
			synth.Fixed(e.baseFreq), synth.Fixed(e.minDur), synth.Fixed(e.maxDur))
	case "loop":
		if len(e.scale) == 0 {
			return nil, errors.New("no scale selected")
		}
		score = synth.NewScaleLoop(e.scale, synth.Fixed(e.baseFreq), e.interval)
	default:
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
	envelope := synth.NewADSR(e.attack, e.decay, e.sustain, e.release)
	player := synth.NewPlayer(e.instrument, envelope, e.pressTime)
	return synth.Voice(score, player, e.dt()), nil
}

func (e *env) eval(input string) (string, error) {
	command, err := mel.Parse(input)
	if err != nil {
		return "", err
	}
	name := string(command.Name)
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity != arityAny && len(command.Args) != cmd.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(command.Args))
		}
		result, err := cmd.run(e, command.Args)
		if err != nil {
			return "", fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return result, nil
	}
	return "", fmt.Errorf("unknown command: %s", name)
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return err
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if result, err := env.eval(line); err != nil {
			fmt.Println(err)
		} else if result != "" {
			fmt.Println(result)
		}
	}
}

func readArgs(args []mel.Node, slots ...interface{}) error {
	if len(args) != len(slots) {
		return errors.New("not enough arguments")
	}
	for n, arg := range args {
		dest := slots[n]
		switch p := dest.(type) {
		case *string:
			s, ok := arg.(mel.Identifier)
			if !ok {
				return fmt.Errorf("argument error: expected an identifier")
			}
			*p = string(s)
		case *float64:
			f, ok := arg.(mel.Number)
			if !ok {
				return fmt.Errorf("argument error: expected a number")
			}
			*p = float64(f)
		case *int:
			f, ok := arg.(mel.Number)
			if !ok {
				return fmt.Errorf("argument error: expected a number")
			}
			*p = int(f)
		default:
			panic("readArgs: unhandled destination type: " + fmt.Sprint(p))
		}
	}
	return nil
}
