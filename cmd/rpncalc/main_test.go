package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		cfg  config
		in   string
		out  string
	}{
		{
			name: "results",
			in:   "2 + 3 * 4\n(2 + 3) * 4\n",
			out:  "14\n20\n",
		},
		{
			name: "blank",
			in:   "\n  \n1+1\n",
			out:  "2\n",
		},
		{
			name: "errors-continue",
			in:   "1 @ 2\n1 +\n3.14\n",
			out:  "3: unexpected character \"@\"\n3: not enough operands for \"+\": have 1, need 2\n3.14\n",
		},
		{
			name: "no-newline",
			in:   "10 - 2 - 3",
			out:  "5\n",
		},
		{
			name: "echo",
			cfg:  config{echo: true},
			in:   "2 + 3 * 4\n",
			out:  "2 3 4 * + : 14\n",
		},
		{
			name: "prompt",
			cfg:  config{prompt: "> "},
			in:   "1/0\n",
			out:  "> +Inf\n> ",
		},
		{
			name: "verb",
			cfg:  config{verb: "%.3f"},
			in:   "1/4\n",
			out:  "0.250\n",
		},
		{
			name: "long-line",
			cfg:  config{opts: []rpn.Option{rpn.MaxRunes(10)}},
			in:   "1+1+1+1+1+1\n2+2\n",
			out:  "11: input too long\n4\n",
		},
		{
			name: "long-line-default",
			in:   strings.Repeat("1+", 40000) + "1\n2+2\n",
			out:  "65537: input too long\n4\n",
		},
		{
			name: "crlf",
			in:   "1+2\r\n\r\n3*3\r\n",
			out:  "3\n9\n",
		},
		{
			name: "right-pow",
			cfg:  config{opts: []rpn.Option{rpn.RightPow()}},
			in:   "2^3^2\n",
			out:  "512\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			cfg := c.cfg
			require.NoError(t, run(strings.NewReader(c.in), &b, &cfg))
			require.Equal(t, c.out, b.String())
		})
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRunReadError(t *testing.T) {
	var b strings.Builder
	err := run(io.MultiReader(strings.NewReader("1+"), failReader{}), &b, &config{})
	require.EqualError(t, err, "disk on fire")
	require.Equal(t, "reading column 3: disk on fire\n", b.String())
}
