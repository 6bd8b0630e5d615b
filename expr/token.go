package expr

import (
	"fmt"
)

const (
	Invalid rune = -(iota + 1)
	Number
	Ident
	Comma
	Lparen
	Rparen
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	EOF
)

type Position struct {
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d", p.Offset+1)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	default:
		prefix = "unknown"
	case Invalid:
		prefix = "invalid"
	case Number:
		prefix = "number"
	case Ident:
		prefix = "ident"
	case Comma:
		return "<comma>"
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Add:
		return "<add>"
	case Sub:
		return "<sub>"
	case Mul:
		return "<mul>"
	case Div:
		return "<div>"
	case Mod:
		return "<mod>"
	case Pow:
		return "<pow>"
	case EOF:
		return "<eof>"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
