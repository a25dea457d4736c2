package rpn

import (
	"strconv"
	"strings"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Num is the value of a Value token. It is zero for all other kinds.
	Num float32
	// Op is the operator of an Operator token, one of the bytes in
	// Operators. It is zero for all other kinds.
	Op byte
	// Col is the 1-based rune position of the token in its source, or 0 if
	// the token was not scanned from text.
	Col int
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// Value is a number literal.
	Value TokenKind = iota
	// Operator is a binary operator.
	Operator
	// LeftBracket is (.
	LeftBracket
	// RightBracket is ).
	RightBracket
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind

// Operators contains the bytes which are considered to be operators.
const Operators = "+-*/^"

// NumToken creates a Value token with no position.
func NumToken(f float32) Token {
	return Token{Kind: Value, Num: f}
}

// OpToken creates an Operator token with no position. It does not check that
// op is in Operators.
func OpToken(op byte) Token {
	return Token{Kind: Operator, Op: op}
}

// LeftToken creates a LeftBracket token with no position.
func LeftToken() Token {
	return Token{Kind: LeftBracket}
}

// RightToken creates a RightBracket token with no position.
func RightToken() Token {
	return Token{Kind: RightBracket}
}

// Text returns the token as it would appear in an expression.
func (t Token) Text() string {
	switch t.Kind {
	case Value:
		return Format(t.Num)
	case Operator:
		return string(t.Op)
	case LeftBracket:
		return "("
	case RightBracket:
		return ")"
	default:
		return "$" + strconv.Itoa(int(t.Kind))
	}
}

// String returns a diagnostic representation of the token, including its
// position if it has one.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	b.WriteByte('(')
	b.WriteString(t.Text())
	b.WriteByte(')')
	if t.Col > 0 {
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(t.Col))
	}
	return b.String()
}

// Format formats a result using the shortest representation that parses back
// to the same float32.
func Format(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// join writes the source text of each token separated by spaces.
func join(b *strings.Builder, toks []Token) {
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text())
	}
}
