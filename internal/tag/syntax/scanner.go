package syntax

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

// scanFn is the lexical scan function
type scanFn func(*scanner) scanFn

// scanner is the lexical scanner of a shape tag, e.g.:
//
//	table:orders; alias:o
type scanner struct {
	input  string
	start  int // start offset of the pending token
	offset int // offset of the next rune

	tokens []token
	token  token
	state  scanFn
}

func newScanner(input string) *scanner {
	return &scanner{
		input: input,
		state: scanKey,
	}
}

// NextToken finds the next token
func (s *scanner) NextToken() bool {
	for len(s.tokens) == 0 && s.state != nil {
		s.state = s.state(s)
	}
	if len(s.tokens) == 0 {
		return false
	}
	s.token = s.tokens[0]
	s.tokens = s.tokens[1:]
	return true
}

func (s *scanner) peek() rune {
	if s.offset >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.offset:])
	return r
}

func (s *scanner) next() rune {
	if s.offset >= len(s.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.offset:])
	s.offset += w
	return r
}

func (s *scanner) skipSpaces() {
	for r := s.peek(); r == ' ' || r == '\t'; r = s.peek() {
		s.next()
	}
	s.start = s.offset
}

// emit emits the pending input as a token, trailing spaces excluded.
func (s *scanner) emit(t TokenType) {
	lit := strings.TrimRight(s.input[s.start:s.offset], " \t")
	s.tokens = append(s.tokens, token{
		typ:   t,
		lit:   lit,
		start: s.start,
		end:   s.start + len(lit),
	})
	s.start = s.offset
}

func scanKey(s *scanner) scanFn {
	s.skipSpaces()
	r := s.peek()
	switch {
	case r == eof:
		s.emit(_EOF)
		return nil
	case isKeyChar(r):
		for isKeyChar(s.peek()) {
			s.next()
		}
		s.emit(_Key)
		return scanAfterKey
	default:
		s.next()
		s.emit(_Error)
		return nil
	}
}

func scanAfterKey(s *scanner) scanFn {
	s.skipSpaces()
	switch s.peek() {
	case ':':
		s.next()
		s.emit(_Colon)
		return scanValue
	case ';':
		s.next()
		s.emit(_Semicolon)
		return scanKey
	case eof:
		s.emit(_EOF)
		return nil
	default:
		s.next()
		s.emit(_Error)
		return nil
	}
}

func scanValue(s *scanner) scanFn {
	s.skipSpaces()
	for r := s.peek(); r != ';' && r != eof; r = s.peek() {
		s.next()
	}
	if s.offset > s.start {
		s.emit(_Value)
	}
	if s.peek() == ';' {
		s.next()
		s.emit(_Semicolon)
		return scanKey
	}
	s.emit(_EOF)
	return nil
}

func isKeyChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}
