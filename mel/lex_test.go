package mel

import "testing"

func TestLexer(t *testing.T) {
	type test struct {
		input  string
		expect []token
	}
	tests := []test{
		{
			input: "A4:0.5",
			expect: []token{
				token{typ: typeIdentifier, text: "A4"},
				token{typ: typeColon, text: ":"},
				token{typ: typeNumber, text: "0.5"},
				token{typ: typeEOF},
			},
		},
		{
			input: "score A4:0.5 Bb3:1",
			expect: []token{
				token{typ: typeIdentifier, text: "score"},
				token{typ: typeIdentifier, text: "A4"},
				token{typ: typeColon, text: ":"},
				token{typ: typeNumber, text: "0.5"},
				token{typ: typeIdentifier, text: "Bb3"},
				token{typ: typeColon, text: ":"},
				token{typ: typeNumber, text: "1"},
				token{typ: typeEOF},
			},
		},
		{
			input: "D#4+53.5:2",
			expect: []token{
				token{typ: typeIdentifier, text: "D#4+53.5"},
				token{typ: typeColon, text: ":"},
				token{typ: typeNumber, text: "2"},
				token{typ: typeEOF},
			},
		},
		{
			input: "render out/audio.raw 5",
			expect: []token{
				token{typ: typeIdentifier, text: "render"},
				token{typ: typeIdentifier, text: "out/audio.raw"},
				token{typ: typeNumber, text: "5"},
				token{typ: typeEOF},
			},
		},
		{
			input: "env 0.1 0.1   0.5 0.2",
			expect: []token{
				token{typ: typeIdentifier, text: "env"},
				token{typ: typeNumber, text: "0.1"},
				token{typ: typeNumber, text: "0.1"},
				token{typ: typeNumber, text: "0.5"},
				token{typ: typeNumber, text: "0.2"},
				token{typ: typeEOF},
			},
		},
		{
			input: "-1.",
			expect: []token{
				token{typ: typeNumber, text: "-1."},
				token{typ: typeEOF},
			},
		},
		{
			input: "-.1",
			expect: []token{
				token{typ: typeNumber, text: "-.1"},
				token{typ: typeEOF},
			},
		},
	}
	for _, test := range tests {
		t.Log(test.input)
		tokens, err := lex(test.input)
		if err != nil {
			t.Errorf("unexpected lex error: %v", err)
			continue
		}
		if len(tokens) != len(test.expect) {
			t.Fatalf("token mismatch: \nwant: %+v, \ngot:  %+v", test.expect, tokens)
		}
		for i, got := range tokens {
			want := test.expect[i]
			if want.typ != got.typ {
				t.Errorf("wrong type: want %v, got %v", want, got)
			}
			if want.text != got.text {
				t.Errorf("wrong text: want %v, got %v", want, got)
			}
		}
	}
}

func TestLexerErrors(t *testing.T) {
	for _, input := range []string{
		"a -",
		"a .-",
		"a ?",
		"1x",
	} {
		_, err := lex(input)
		if err == nil {
			t.Errorf("expected error for input: %q", input)
		}
	}
}
