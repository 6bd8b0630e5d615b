package expr

import (
	"unicode"
	"unicode/utf8"
)

type Scanner struct {
	input []byte

	curr int
	next int
	char rune
}

func Scan(str string) *Scanner {
	sc := Scanner{
		input: []byte(str),
	}
	sc.read()
	return &sc
}

func (s *Scanner) Scan() Token {
	s.skipBlank()

	var tok Token
	tok.Offset = s.curr
	if s.done() {
		tok.Type = EOF
		return tok
	}
	switch {
	case isDigit(s.char) || s.char == dot:
		s.scanNumber(&tok)
	case isLetter(s.char):
		s.scanIdent(&tok)
	default:
		s.scanPunct(&tok)
	}
	return tok
}

func (s *Scanner) scanNumber(tok *Token) {
	pos := s.curr
	s.accept(isDigit)
	if s.char == dot {
		s.read()
		s.accept(isDigit)
	}
	if s.char == 'e' || s.char == 'E' {
		if k := s.peek(); isDigit(k) || k == plus || k == minus {
			s.read()
			if s.char == plus || s.char == minus {
				s.read()
			}
			s.accept(isDigit)
		}
	}
	tok.Type = Number
	tok.Literal = string(s.input[pos:s.curr])
}

func (s *Scanner) scanIdent(tok *Token) {
	pos := s.curr
	s.accept(func(r rune) bool {
		return isLetter(r) || isDigit(r)
	})
	tok.Type = Ident
	tok.Literal = string(s.input[pos:s.curr])
}

func (s *Scanner) scanPunct(tok *Token) {
	tok.Literal = string(s.char)
	switch s.char {
	case plus:
		tok.Type = Add
	case minus:
		tok.Type = Sub
	case star:
		tok.Type = Mul
		if s.peek() == star {
			s.read()
			tok.Type = Pow
			tok.Literal = "**"
		}
	case slash:
		tok.Type = Div
	case percent:
		tok.Type = Mod
	case caret:
		tok.Type = Pow
	case comma:
		tok.Type = Comma
	case lparen:
		tok.Type = Lparen
	case rparen:
		tok.Type = Rparen
	default:
		tok.Type = Invalid
	}
	s.read()
}

func (s *Scanner) skipBlank() {
	s.accept(unicode.IsSpace)
}

func (s *Scanner) accept(fn func(rune) bool) {
	for !s.done() && fn(s.char) {
		s.read()
	}
}

func (s *Scanner) done() bool {
	return s.curr >= len(s.input)
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.curr = len(s.input)
		s.char = utf8.RuneError
		return
	}
	r, size := utf8.DecodeRune(s.input[s.next:])
	s.curr = s.next
	s.next += size
	s.char = r
}

func (s *Scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.input[s.next:])
	return r
}

const (
	dot     = '.'
	plus    = '+'
	minus   = '-'
	star    = '*'
	slash   = '/'
	percent = '%'
	caret   = '^'
	comma   = ','
	lparen  = '('
	rparen  = ')'
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
