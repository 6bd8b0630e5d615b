package expr

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrSyntax = errors.New("syntax error")

type SyntaxError struct {
	Position
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrSyntax, e.Position, e.Message)
}

func (e SyntaxError) Unwrap() error {
	return ErrSyntax
}

type Expression interface{}

type call struct {
	ident string
	args  []Expression
}

type variable struct {
	ident string
}

type number struct {
	value float64
}

type unary struct {
	op    rune
	right Expression
}

type binary struct {
	op    rune
	left  Expression
	right Expression
}

const (
	powLowest = iota
	powAdd    // +, -
	powMul    // /, *, %
	powPrefix
	powPow  // ^, **
	powCall // ()
)

type powerMap map[rune]int

func (p powerMap) Get(r rune) int {
	v, ok := p[r]
	if !ok {
		return powLowest
	}
	return v
}

var powers = powerMap{
	Add:    powAdd,
	Sub:    powAdd,
	Mul:    powMul,
	Div:    powMul,
	Mod:    powMul,
	Pow:    powPow,
	Lparen: powCall,
}

type parser struct {
	scan *Scanner
	curr Token
	peek Token

	prefix map[rune]func() (Expression, error)
	infix  map[rune]func(Expression) (Expression, error)
}

func Parse(str string) (Expression, error) {
	p := parser{
		scan: Scan(str),
	}
	p.prefix = map[rune]func() (Expression, error){
		Sub:    p.parsePrefix,
		Add:    p.parsePrefix,
		Number: p.parsePrefix,
		Ident:  p.parsePrefix,
		Lparen: p.parseGroup,
	}
	p.infix = map[rune]func(Expression) (Expression, error){
		Add:    p.parseInfix,
		Sub:    p.parseInfix,
		Mul:    p.parseInfix,
		Div:    p.parseInfix,
		Mod:    p.parseInfix,
		Pow:    p.parsePower,
		Lparen: p.parseCall,
	}
	p.next()
	p.next()
	return p.Parse()
}

func (p *parser) Parse() (Expression, error) {
	if p.done() {
		return nil, p.errorf("empty expression")
	}
	e, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.errorf("unexpected token %s", p.curr)
	}
	return e, nil
}

func (p *parser) parse(pow int) (Expression, error) {
	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return nil, p.errorf("%s can not be parsed", p.curr)
	}
	left, err := fn()
	if err != nil {
		return nil, err
	}
	for !p.done() && pow < powers.Get(p.curr.Type) {
		fn, ok := p.infix[p.curr.Type]
		if !ok {
			return nil, p.errorf("%s can not be parsed", p.curr)
		}
		left, err = fn(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseInfix(left Expression) (Expression, error) {
	expr := binary{
		op:   p.curr.Type,
		left: left,
	}
	pow := powers.Get(p.curr.Type)
	p.next()
	right, err := p.parse(pow)
	if err != nil {
		return nil, err
	}
	expr.right = right
	return expr, nil
}

// parsePower is right associative: 2^3^2 is 2^(3^2).
func (p *parser) parsePower(left Expression) (Expression, error) {
	expr := binary{
		op:   Pow,
		left: left,
	}
	p.next()
	right, err := p.parse(powPow - 1)
	if err != nil {
		return nil, err
	}
	expr.right = right
	return expr, nil
}

func (p *parser) parsePrefix() (Expression, error) {
	var expr Expression
	switch p.curr.Type {
	case Sub, Add:
		op := p.curr.Type
		p.next()

		right, err := p.parse(powPrefix)
		if err != nil {
			return nil, err
		}
		expr = unary{
			op:    op,
			right: right,
		}
	case Number:
		n, err := strconv.ParseFloat(p.curr.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid number %s", p.curr.Literal)
		}
		expr = number{
			value: n,
		}
		p.next()
	case Ident:
		expr = variable{
			ident: p.curr.Literal,
		}
		p.next()
	default:
		return nil, p.errorf("unsupported token: %s", p.curr)
	}
	return expr, nil
}

func (p *parser) parseCall(expr Expression) (Expression, error) {
	v, ok := expr.(variable)
	if !ok {
		return nil, p.errorf("try to call non function")
	}
	fn := call{
		ident: v.ident,
	}
	p.next()
	for p.curr.Type != Rparen && !p.done() {
		e, err := p.parse(powLowest)
		if err != nil {
			return nil, err
		}
		fn.args = append(fn.args, e)
		switch p.curr.Type {
		case Comma:
			p.next()
		case Rparen:
		default:
			return nil, p.errorf("missing comma")
		}
	}
	if p.curr.Type != Rparen {
		return nil, p.errorf("missing closing )")
	}
	p.next()
	return fn, nil
}

func (p *parser) parseGroup() (Expression, error) {
	p.next()
	expr, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if p.curr.Type != Rparen {
		return nil, p.errorf("missing closing )")
	}
	p.next()
	return expr, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return SyntaxError{
		Position: p.curr.Position,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) done() bool {
	return p.curr.Type == EOF
}

func (p *parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
}
