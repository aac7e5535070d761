// Package mel parses the command and melody notation used by the
// tonewheel REPL. A line is a command name followed by arguments; an
// argument is an identifier, a number, or a NOTE:DURATION pair like
// "A4:0.5" or "Gb3-12:1.5" ("r" is a rest).
package mel

import (
	"fmt"
	"strconv"
)

type Node interface {
	isNode()
}

func (Identifier) isNode() {}
func (Number) isNode()     {}
func (NoteLen) isNode()    {}

type Command struct {
	Name Identifier
	Args []Node
}

type Identifier string
type Number float64

// NoteLen is a note name paired with a duration in seconds.
type NoteLen struct {
	Note     string
	Duration float64
}

func Parse(input string) (Command, error) {
	tokens, err := lex(input)
	if err != nil {
		return Command{}, err
	}
	p := parser{tokens: tokens}
	return p.parse()
}

type parser struct {
	pos    int
	tokens []token
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) peek() token {
	t := p.next()
	p.pos--
	return t
}

func (p *parser) parse() (Command, error) {
	var cmd Command
	token := p.next()
	if token.typ != typeIdentifier {
		return cmd, unexpected(token)
	}
	cmd.Name = Identifier(token.text)
	for token := p.next(); token.typ != typeEOF; token = p.next() {
		var arg Node
		switch token.typ {
		case typeIdentifier:
			if p.peek().typ == typeColon {
				note, err := p.noteLen(token)
				if err != nil {
					return cmd, err
				}
				arg = note
			} else {
				arg = Identifier(token.text)
			}
		case typeNumber:
			f, err := strconv.ParseFloat(token.text, 64)
			if err != nil {
				return cmd, err
			}
			arg = Number(f)
		default:
			return cmd, unexpected(token)
		}
		cmd.Args = append(cmd.Args, arg)
	}
	return cmd, nil
}

func (p *parser) noteLen(name token) (NoteLen, error) {
	p.next() // colon
	t := p.next()
	if t.typ != typeNumber {
		return NoteLen{}, unexpected(t)
	}
	dur, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return NoteLen{}, err
	}
	if dur <= 0 {
		return NoteLen{}, fmt.Errorf("note duration must be positive: %v", t.text)
	}
	return NoteLen{Note: name.text, Duration: dur}, nil
}

func unexpected(t token) error {
	return fmt.Errorf("unexpected token %q at position %d", t.text, t.pos)
}
