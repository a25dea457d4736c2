package rpn

import (
	"io"
	"strconv"
	"strings"
)

// operand is a value on the evaluation stack along with the position of the
// first token of the subexpression that produced it.
type operand struct {
	v   float32
	col int
}

// machine evaluates postfix sequences. A machine is created for each
// evaluation and never shared.
type machine struct {
	vals stack[operand]
}

func newMachine(max, hint int) *machine {
	return &machine{vals: newStack[operand]("value stack", max, hint)}
}

// run evaluates a postfix sequence. The result for an empty sequence is 0.
func (m *machine) run(rpn []Token) (float32, error) {
	for _, tok := range rpn {
		switch tok.Kind {
		case Value:
			if err := m.vals.push(operand{v: tok.Num, col: tok.Col}); err != nil {
				return 0, err
			}
		case Operator:
			if _, ok := binop(tok.Op, false); !ok {
				return 0, &OperatorError{Col: tok.Col, Operator: tok.Text()}
			}
			if m.vals.len() < 2 {
				return 0, &OperandError{Col: tok.Col, Operator: tok.Text(), Have: m.vals.len()}
			}
			// The right operand was pushed last.
			right := m.vals.pop()
			left := m.vals.pop()
			r := operand{v: arith(tok.Op, left.v, right.v), col: left.col}
			// Can't overflow; we just popped two.
			m.vals.push(r)
		default:
			return 0, &OperatorError{Col: tok.Col, Operator: tok.Text()}
		}
	}
	switch m.vals.len() {
	case 0:
		return 0, nil
	case 1:
		return m.vals.top().v, nil
	default:
		return 0, &LeftoverError{Col: m.vals.s[1].col, Len: m.vals.len()}
	}
}

// arith applies a binary operator in float32 arithmetic. Division by zero
// follows IEEE-754.
func arith(op byte, left, right float32) float32 {
	switch op {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	case '^':
		return pow32(left, right)
	default:
		panic("rpn: invalid operator " + strconv.QuoteRune(rune(op)))
	}
}

// EvalPostfix evaluates a sequence of tokens in postfix order. The result for
// an empty sequence is 0.
func EvalPostfix(toks []Token, opts ...Option) (float32, error) {
	c := configure(opts)
	if len(toks) > c.maxTokens {
		return 0, &LimitError{What: "token sequence", Max: c.maxTokens}
	}
	return newMachine(c.maxTokens, len(toks)/2+1).run(toks)
}

// Eval evaluates the expression.
func (e *Expr) Eval() float32 {
	r, err := newMachine(e.max, len(e.rpn)/2+1).run(e.rpn)
	if err != nil {
		// Parse verified the sequence.
		panic("rpn: inconsistent stack: " + err.Error())
	}
	return r
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...Option) (float32, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval(), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...Option) (float32, error) {
	return Eval(strings.NewReader(src), opts...)
}
