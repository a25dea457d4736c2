package rpn

import "strconv"

// Default limits for expressions. They bound the work done for a single
// input.
const (
	DefaultMaxRunes  = 64 << 10
	DefaultMaxTokens = 64 << 10
)

// Option is an option for tokenizing, converting, or evaluating.
type Option interface {
	option(config) config
}

type (
	runesopt  int
	tokensopt int
	flagopt   func(*config)
)

// config holds settings for a single call. It is also an Option.
type config struct {
	// maxRunes is the maximum number of runes the lexer will read.
	maxRunes int
	// maxTokens is the maximum number of tokens in any sequence, and so also
	// the maximum depth of either stack.
	maxTokens int
	// rightpow indicates that ^ is right-associative.
	rightpow bool
	// closeopen indicates that open brackets left at the end of the input
	// are discarded rather than reported.
	closeopen bool
}

func defaults() config {
	return config{
		maxRunes:  DefaultMaxRunes,
		maxTokens: DefaultMaxTokens,
	}
}

func configure(opts []Option) config {
	c := defaults()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// MaxRunes sets the maximum number of runes in an input expression. Panics if
// n is not positive.
func MaxRunes(n int) Option {
	if n <= 0 {
		panic("rpn: invalid rune limit " + strconv.Itoa(n))
	}
	return runesopt(n)
}

func (o runesopt) option(c config) config {
	c.maxRunes = int(o)
	return c
}

// MaxTokens sets the maximum number of tokens in an expression, which also
// bounds the depth of the operator and value stacks. Panics if n is not
// positive.
func MaxTokens(n int) Option {
	if n <= 0 {
		panic("rpn: invalid token limit " + strconv.Itoa(n))
	}
	return tokensopt(n)
}

func (o tokensopt) option(c config) config {
	c.maxTokens = int(o)
	return c
}

// RightPow makes exponentiation right-associative, so that "2^3^2" is
// 2^(3^2) = 512. By default, ^ groups left to right like every other
// operator.
func RightPow() Option {
	return flagopt(func(c *config) { c.rightpow = true })
}

// CloseOpen tells the converter to discard open brackets which are never
// closed, so that "(1+2" is the same as "(1+2)". By default, an unclosed
// bracket is a *BracketError.
func CloseOpen() Option {
	return flagopt(func(c *config) { c.closeopen = true })
}

func (o flagopt) option(c config) config {
	o(&c)
	return c
}

// Preset combines a list of options into one. Options applied after a preset
// override it.
func Preset(opts ...Option) Option {
	c := configure(opts)
	return &c
}

func (o *config) option(c config) config {
	return *o
}
