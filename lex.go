package rpn

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far, which is also the position of
	// the most recently read rune.
	col int
	// max is the maximum number of runes to read.
	max int
}

// Tokenize scans an expression into tokens. If an error occurs, the result
// contains the tokens scanned before the error.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	return Lex(strings.NewReader(src), opts...)
}

// Lex scans an expression into tokens, reading src until EOF. If an error
// occurs, the result contains the tokens scanned before the error.
func Lex(src io.RuneScanner, opts ...Option) ([]Token, error) {
	c := configure(opts)
	return lex(src, &c)
}

func lex(src io.RuneScanner, c *config) ([]Token, error) {
	l := lexer{src: src, max: c.maxRunes}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if err == io.EOF {
				return toks, nil
			}
			return toks, err
		}
		if len(toks) >= c.maxTokens {
			return toks, &LexError{Kind: InputTooLong, Col: tok.Col}
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
// Reading past the rune limit is a LexError.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return r, io.EOF
		}
		return r, fmt.Errorf("reading column %d: %w", l.col+1, err)
	}
	if sz > 0 {
		l.col++
		if l.col > l.max {
			return r, &LexError{Kind: InputTooLong, Col: l.col}
		}
	}
	return r, nil
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Col: l.col}
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			l.unreadRune()
			f, err := l.scanNum()
			if err != nil {
				return Token{}, err
			}
			tok.Kind = Value
			tok.Num = f
			return tok, nil
		case '(':
			tok.Kind = LeftBracket
			return tok, nil
		case ')':
			tok.Kind = RightBracket
			return tok, nil
		}
		if k := strings.IndexRune(Operators, r); k >= 0 {
			tok.Kind = Operator
			tok.Op = Operators[k]
			return tok, nil
		}
		return Token{}, &LexError{Kind: UnexpectedCharacter, Text: string(r), Col: tok.Col}
	}
}

// scanNum scans the longest run of runes that can appear in a number literal
// and parses it. A sign is part of the literal only immediately following an
// exponent marker; anywhere else, it is an operator.
func (l *lexer) scanNum() (float32, error) {
	defer l.buf.Reset()
	col := l.col + 1
	var le bool
loop:
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		switch r {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			le = false
		case 'e', 'E':
			le = true
		case '+', '-':
			if !le {
				l.unreadRune()
				break loop
			}
			le = false
		default:
			l.unreadRune()
			break loop
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		// Out of range literals are ±Inf, like any other float32 overflow.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, &LexError{Kind: InvalidNumber, Text: text, Col: col}
		}
	}
	return float32(f), nil
}
