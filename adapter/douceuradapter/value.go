package douceuradapter

import (
	"strconv"
	"strings"

	"github.com/npillmayer/uistyle/syntax"
)

// parseValue reads a declaration value. Values which are not valid
// expressions are taken as strings.
func parseValue(value string, bound map[string]bool) (syntax.Expr, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return nil, syntax.Errorf(syntax.Position{}, "empty value")
	}
	p := &valueParser{scanner: scanner{text: raw}, bound: bound}
	e, err := p.expr()
	if p.skipSpace(); err != nil || !p.done() {
		tracer().Debugf("value %q is not an expression, taking it as a string", raw)
		return syntax.String(raw), nil
	}
	return e, nil
}

type valueParser struct {
	scanner
	bound map[string]bool
}

func (p *valueParser) expr() (syntax.Expr, error) {
	l, err := p.term()
	for err == nil {
		p.skipSpace()
		var op syntax.BinaryOp
		switch p.peek() {
		case '+':
			op = syntax.OpAdd
		case '-':
			op = syntax.OpSub
		default:
			return l, nil
		}
		p.pos++
		var r syntax.Expr
		if r, err = p.term(); err == nil {
			l = syntax.Binary(op, l, r)
		}
	}
	return nil, err
}

func (p *valueParser) term() (syntax.Expr, error) {
	l, err := p.unary()
	for err == nil {
		p.skipSpace()
		var op syntax.BinaryOp
		switch p.peek() {
		case '*':
			op = syntax.OpMul
		case '/':
			op = syntax.OpDiv
		case '%':
			op = syntax.OpRem
		default:
			return l, nil
		}
		p.pos++
		var r syntax.Expr
		if r, err = p.unary(); err == nil {
			l = syntax.Binary(op, l, r)
		}
	}
	return nil, err
}

func (p *valueParser) unary() (syntax.Expr, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return syntax.Unary(syntax.OpNeg, x), nil
	case c == '!':
		p.pos++
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return syntax.Unary(syntax.OpNot, x), nil
	}
	return p.primary()
}

func (p *valueParser) primary() (syntax.Expr, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.skipSpace(); p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return e, nil
	case c == '"' || c == '\'':
		end := strings.IndexByte(p.text[p.pos+1:], c)
		if end < 0 {
			return nil, p.errorf("unterminated string")
		}
		s := p.text[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return syntax.String(s), nil
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	case isIdentChar(c, true):
		return p.identifier()
	}
	return nil, p.errorf("unexpected input")
}

func (p *valueParser) number() (syntax.Expr, error) {
	start := p.pos
	isFloat := false
	for !p.done() {
		c := p.peek()
		switch {
		case c == '.' || c == 'e' || c == 'E':
			isFloat = true
		case (c == '-' || c == '+') && p.pos > start && strings.IndexByte("eE", p.text[p.pos-1]) >= 0:
		case c < '0' || c > '9':
			return p.numberLiteral(start, isFloat)
		}
		p.pos++
	}
	return p.numberLiteral(start, isFloat)
}

func (p *valueParser) numberLiteral(start int, isFloat bool) (syntax.Expr, error) {
	text := p.text[start:p.pos]
	if c := p.peek(); c != '-' && isIdentChar(c, false) {
		return nil, p.errorf("unsupported unit")
	}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", text)
		}
		return syntax.Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, p.errorf("invalid number %q", text)
	}
	return syntax.Int(int32(i)), nil
}

// identifier reads a name. Names of bound variables and of the parent's
// size are variables, names followed by '(' are calls, true and false
// are booleans. Other names are strings.
//
// As in CSS, a hyphen followed by a letter or '_' continues the name
// ("sans-serif"). A hyphen before a digit or a blank is a minus sign.
func (p *valueParser) identifier() (syntax.Expr, error) {
	start := p.pos
	for !p.done() && isIdentChar(p.peek(), p.pos == start) {
		if p.peek() == '-' && !p.hyphenInName() {
			break
		}
		p.pos++
	}
	name := p.text[start:p.pos]
	if p.peek() == '(' {
		p.pos++
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		switch {
		case name == "float" && len(args) == 1:
			return syntax.Unary(syntax.OpIntToFloat, args[0]), nil
		case name == "int" && len(args) == 1:
			return syntax.Unary(syntax.OpFloatToInt, args[0]), nil
		}
		return syntax.Call(name, args...), nil
	}
	switch {
	case name == "true":
		return syntax.Bool(true), nil
	case name == "false":
		return syntax.Bool(false), nil
	case p.bound[name], name == "parent_width", name == "parent_height":
		return syntax.Var(name), nil
	}
	return syntax.String(name), nil
}

func (p *valueParser) hyphenInName() bool {
	if p.pos+1 >= len(p.text) {
		return false
	}
	c := p.text[p.pos+1]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func (p *valueParser) arguments() ([]syntax.Expr, error) {
	var args []syntax.Expr
	if p.skipSpace(); p.peek() == ')' {
		p.pos++
		return args, nil
	}
	for {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}
