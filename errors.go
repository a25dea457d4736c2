package rpn

import (
	"errors"
	"strconv"
)

// LexErrorKind is the reason a LexError occurred.
type LexErrorKind int8

const (
	// UnexpectedCharacter is a rune which cannot begin any token.
	UnexpectedCharacter LexErrorKind = iota + 1
	// InvalidNumber is a malformed number literal.
	InvalidNumber
	// InputTooLong is an input exceeding the rune or token limit.
	InputTooLong
)

// LexError indicates input that could not be tokenized. It implements
// InputError.
type LexError struct {
	// Kind is the reason for the error.
	Kind LexErrorKind
	// Text is the offending text: the unexpected rune, the malformed
	// literal, or the empty string for InputTooLong.
	Text string
	// Col is the position of the first rune of Text, or of the rune that
	// exceeded the limit.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case UnexpectedCharacter:
		return errpos(err.Col, "unexpected character "+strconv.Quote(err.Text))
	case InvalidNumber:
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	case InputTooLong:
		return errpos(err.Col, "input too long")
	default:
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

// Char returns the unexpected rune for an UnexpectedCharacter error, or -1 for
// any other kind.
func (err *LexError) Char() rune {
	if err.Kind != UnexpectedCharacter {
		return -1
	}
	for _, r := range err.Text {
		return r
	}
	return -1
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket that was never closed. Exactly one of Left
	// and Right is set.
	Left string
	// Right is the closing bracket that had no match.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left != "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a token that is not understood in its
// position, e.g. an operator byte outside Operators or a bracket in a postfix
// sequence. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator applied with fewer than two
// values available. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator missing operands.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Operator)+": have "+strconv.Itoa(err.Have)+", need 2")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// LeftoverError is an error indicating that evaluation ended with more than
// one value, e.g. from "1 2". It implements InputError.
type LeftoverError struct {
	// Col is the position of the first value not consumed by an operator.
	Col int
	// Len is the number of values left.
	Len int
}

func (err *LeftoverError) Error() string {
	return errpos(err.Col, "malformed expression: "+strconv.Itoa(err.Len)+" values with no operator between them")
}

func (err *LeftoverError) Pos() int {
	return err.Col
}

// LimitError is an error indicating a token sequence or stack which grew past
// the configured limit.
type LimitError struct {
	// What names the container which overflowed.
	What string
	// Max is the limit.
	Max int
}

func (err *LimitError) Error() string {
	return err.What + " exceeds limit of " + strconv.Itoa(err.Max)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. Pos is 0 for
	// tokens that were not scanned from text.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*LeftoverError)(nil)
)

// IsLexError reports whether err resulted from tokenizing.
func IsLexError(err error) bool {
	var e *LexError
	return errors.As(err, &e)
}

// IsSyntaxError reports whether err resulted from mismatched brackets.
func IsSyntaxError(err error) bool {
	var e *BracketError
	return errors.As(err, &e)
}

// IsEvalError reports whether err resulted from an operator missing operands
// or from values missing operators.
func IsEvalError(err error) bool {
	var (
		o *OperandError
		l *LeftoverError
	)
	return errors.As(err, &o) || errors.As(err, &l)
}
