package rpn

import (
	"io"
	"strings"
)

// Expr is a parsed expression in postfix order. It is immutable and safe to
// evaluate concurrently.
type Expr struct {
	// rpn is the postfix token sequence. Parse has checked that every
	// operator has two operands and that exactly one value remains.
	rpn []Token
	// max is the value stack limit.
	max int
}

// Parse scans an expression and converts it to postfix order. The result is
// checked so that evaluating it cannot fail.
func Parse(src io.RuneScanner, opts ...Option) (*Expr, error) {
	c := configure(opts)
	toks, err := lex(src, &c)
	if err != nil {
		return nil, err
	}
	rpn, err := postfix(toks, &c)
	if err != nil {
		return nil, err
	}
	if err := verify(rpn); err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn, max: c.maxTokens}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...Option) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Postfix converts a sequence of tokens in infix order to postfix order using
// the shunting-yard algorithm.
func Postfix(toks []Token, opts ...Option) ([]Token, error) {
	c := configure(opts)
	return postfix(toks, &c)
}

func postfix(toks []Token, c *config) ([]Token, error) {
	if len(toks) > c.maxTokens {
		return nil, &LimitError{What: "token sequence", Max: c.maxTokens}
	}
	out := make([]Token, 0, len(toks))
	ops := newStack[Token]("operator stack", c.maxTokens, 16)
	for _, tok := range toks {
		switch tok.Kind {
		case Value:
			out = append(out, tok)
		case Operator:
			prec, ok := binop(tok.Op, c.rightpow)
			if !ok {
				return nil, &OperatorError{Col: tok.Col, Operator: tok.Text()}
			}
			// Move operators that bind at least as tightly to the output.
			// Open brackets stop the search.
			for ops.len() > 0 {
				top := ops.top()
				if top.Kind != Operator {
					break
				}
				p, _ := binop(top.Op, c.rightpow)
				if prec.moreBinding(p) {
					break
				}
				out = append(out, ops.pop())
			}
			if err := ops.push(tok); err != nil {
				return nil, err
			}
		case LeftBracket:
			if err := ops.push(tok); err != nil {
				return nil, err
			}
		case RightBracket:
			for {
				if ops.len() == 0 {
					return nil, &BracketError{Col: tok.Col, Right: ")"}
				}
				top := ops.pop()
				if top.Kind == LeftBracket {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &OperatorError{Col: tok.Col, Operator: tok.Text()}
		}
	}
	for ops.len() > 0 {
		top := ops.pop()
		if top.Kind == LeftBracket {
			if c.closeopen {
				continue
			}
			return nil, &BracketError{Col: top.Col, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// verify checks that a postfix sequence evaluates without stack errors. It
// tracks only the column of each value that would be on the stack.
func verify(rpn []Token) error {
	var cols []int
	for _, tok := range rpn {
		switch tok.Kind {
		case Value:
			cols = append(cols, tok.Col)
		case Operator:
			if len(cols) < 2 {
				return &OperandError{Col: tok.Col, Operator: tok.Text(), Have: len(cols)}
			}
			cols = cols[:len(cols)-1]
		default:
			return &OperatorError{Col: tok.Col, Operator: tok.Text()}
		}
	}
	if len(cols) > 1 {
		return &LeftoverError{Col: cols[1], Len: len(cols)}
	}
	return nil
}

// Postfix returns a copy of the expression's tokens in postfix order.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// String formats the expression in postfix order, e.g. "2 3 4 * +".
func (e *Expr) String() string {
	var b strings.Builder
	join(&b, e.rpn)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for an operator byte. The second result is
// false if there is no such operator.
func binop(op byte, rightpow bool) (operator, bool) {
	switch op {
	case '+', '-':
		return operator{1, false}, true
	case '*', '/':
		return operator{2, false}, true
	case '^':
		return operator{3, rightpow}, true
	default:
		return operator{}, false
	}
}
