package dub

import (
	"fmt"
	"strconv"
)

// Node is a command argument.
type Node interface {
	isNode()
}

func (Identifier) isNode() {}
func (Int) isNode()        {}
func (Float) isNode()      {}
func (String) isNode()     {}

type Command struct {
	Name Identifier
	Args []Node
}

type Identifier string
type Int int
type Float float64
type String string

// Parse parses a single command line of the form `name arg...`.
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
			arg = Identifier(token.text)
		case typeString:
			arg = String(token.text[1 : len(token.text)-1])
		case typeFloat:
			f, err := strconv.ParseFloat(token.text, 64)
			if err != nil {
				return cmd, err
			}
			arg = Float(f)
		case typeInt:
			n, err := strconv.Atoi(token.text)
			if err != nil {
				return cmd, err
			}
			arg = Int(n)
		default:
			return cmd, unexpected(token)
		}
		cmd.Args = append(cmd.Args, arg)
	}
	return cmd, nil
}

func unexpected(t token) error {
	if t.typ == typeEOF {
		return fmt.Errorf("unexpected end of input")
	}
	return fmt.Errorf("unexpected token %q at position %d", t.text, t.pos)
}
