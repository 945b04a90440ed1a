package formula

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const maxDepth = 64

type node interface {
	eval() (decimal.Decimal, error)
}

type numberNode struct {
	value decimal.Decimal
}

func (n numberNode) eval() (decimal.Decimal, error) {
	return n.value, nil
}

type negateNode struct {
	operand node
}

func (n negateNode) eval() (decimal.Decimal, error) {
	v, err := n.operand.eval()
	if err != nil {
		return decimal.Zero, err
	}
	return v.Neg(), nil
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval() (decimal.Decimal, error) {
	l, err := n.left.eval()
	if err != nil {
		return decimal.Zero, err
	}
	r, err := n.right.eval()
	if err != nil {
		return decimal.Zero, err
	}

	switch n.op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		if r.IsZero() {
			return decimal.Zero, errDivisionByZero
		}
		return l.Div(r), nil
	}
	return decimal.Zero, fmt.Errorf("unknown operator %q", n.op)
}

type parser struct {
	src   string
	pos   int
	depth int
}

func parse(src string) (node, error) {
	p := &parser{src: src}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("unexpected %q at position %d", p.src[p.pos], p.pos)
	}
	return n, nil
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.peekOp('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++

		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.peekOp('*', '/')
		if !ok {
			return left, nil
		}
		p.pos++

		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, fmt.Errorf("expression nested too deeply")
	}

	if op, ok := p.peekOp('+', '-'); ok {
		p.pos++
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			return negateNode{operand: operand}, nil
		}
		return operand, nil
	}
	return p.primary()
}

// primary := number | '(' expression ')'
func (p *parser) primary() (node, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	if p.src[p.pos] == '(' {
		p.pos++
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", p.pos)
		}
		p.pos++
		return inner, nil
	}

	return p.number()
}

func (p *parser) number() (node, error) {
	start := p.pos
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("unexpected %q at position %d", p.src[p.pos], p.pos)
	}

	literal := p.src[start:p.pos]
	value, err := decimal.NewFromString(literal)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q at position %d", literal, start)
	}
	return numberNode{value: value}, nil
}

func (p *parser) peekOp(ops ...byte) (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	c := p.src[p.pos]
	for _, op := range ops {
		if c == op {
			return c, true
		}
	}
	return 0, false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
