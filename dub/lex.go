package dub

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	typeUnknown tokenType = iota
	typeInt
	typeFloat
	typeIdentifier
	typeString
	typeEOF
)

type token struct {
	typ  tokenType
	pos  int
	text string
}

// lex splits a command line into tokens separated by spaces or tabs. The
// last token is always typeEOF.
func lex(input string) ([]token, error) {
	var tokens []token
	pos := 0
	for {
		for pos < len(input) && isSpace(rune(input[pos])) {
			pos++
		}
		if pos == len(input) {
			return append(tokens, token{typ: typeEOF, pos: pos}), nil
		}
		typ, end, err := scan(input, pos)
		if err != nil {
			return tokens, err
		}
		if end < len(input) && !isSpace(rune(input[end])) {
			return tokens, unexpectedChar(input, end)
		}
		tokens = append(tokens, token{typ, pos, input[pos:end]})
		pos = end
	}
}

// scan reads the token starting at pos and returns its type and end offset.
func scan(input string, pos int) (tokenType, int, error) {
	r, w := utf8.DecodeRuneInString(input[pos:])
	switch {
	case unicode.IsLetter(r):
		end := pos + w
		for end < len(input) {
			r, w := utf8.DecodeRuneInString(input[end:])
			if !isIdentifierRune(r) {
				break
			}
			end += w
		}
		return typeIdentifier, end, nil
	case r == '"':
		// no escapes
		n := strings.IndexByte(input[pos+1:], '"')
		if n < 0 {
			return typeUnknown, 0, fmt.Errorf("unterminated string starting at position %d", pos)
		}
		return typeString, pos + n + 2, nil
	case r == '-' || r == '.' || isDigit(r):
		return scanNumber(input, pos)
	}
	return typeUnknown, 0, unexpectedChar(input, pos)
}

// scanNumber accepts an optional minus sign followed by digits with at most
// one decimal point. At least one digit is required.
func scanNumber(input string, pos int) (tokenType, int, error) {
	end := pos
	if input[end] == '-' {
		end++
	}
	n := countDigits(input[end:])
	end += n
	typ := typeInt
	if end < len(input) && input[end] == '.' {
		typ = typeFloat
		end++
		frac := countDigits(input[end:])
		end += frac
		n += frac
	}
	if n == 0 {
		return typeUnknown, 0, unexpectedChar(input, pos)
	}
	return typ, end, nil
}

func unexpectedChar(input string, pos int) error {
	r, _ := utf8.DecodeRuneInString(input[pos:])
	return fmt.Errorf("unexpected character at position %d: %#U", pos, r)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(rune(s[n])) {
		n++
	}
	return n
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
