package mel

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	type test struct {
		input  string
		expect Command
	}
	tests := []test{
		{
			input: "score A4:0.5 Bb3:1 r:0.25",
			expect: Command{
				Name: "score",
				Args: []Node{
					NoteLen{Note: "A4", Duration: 0.5},
					NoteLen{Note: "Bb3", Duration: 1},
					NoteLen{Note: "r", Duration: 0.25},
				},
			},
		},
		{
			input: "env 0.1 0.1 0.5 0.2",
			expect: Command{
				Name: "env",
				Args: []Node{Number(0.1), Number(0.1), Number(0.5), Number(0.2)},
			},
		},
		{
			input: "render out.raw 5",
			expect: Command{
				Name: "render",
				Args: []Node{Identifier("out.raw"), Number(5)},
			},
		},
		{
			input: "timbre organ",
			expect: Command{
				Name: "timbre",
				Args: []Node{Identifier("organ")},
			},
		},
		{
			input:  "seed 42",
			expect: Command{Name: "seed", Args: []Node{Number(42)}},
		},
		{
			input:  "chaos",
			expect: Command{Name: "chaos"},
		},
		{
			input: "score D#4+53.5:2",
			expect: Command{
				Name: "score",
				Args: []Node{NoteLen{Note: "D#4+53.5", Duration: 2}},
			},
		},
	}
	for _, test := range tests {
		t.Log(test.input)
		got, err := Parse(test.input)
		if err != nil {
			t.Errorf("unexpected parse error: %v", err)
			continue
		}
		if !reflect.DeepEqual(test.expect, got) {
			t.Errorf("wrong command:\nwant: %+v\ngot:  %+v", test.expect, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"5 score",
		"score A4:",
		"score A4:x",
		"score A4:-1",
		"score A4:0",
		"render :5",
	} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected error for input: %q", input)
		}
	}
}
