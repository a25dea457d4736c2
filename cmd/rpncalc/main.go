package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/rpn"
)

// config is the command's settings.
type config struct {
	verb   string
	prompt string
	echo   bool
	dump   bool
	opts   []rpn.Option
}

func main() {
	log.SetFlags(0)
	var (
		inname, verb, prompt string
		echo, dump           bool
		rightpow, closeopen  bool
		runes, tokens        int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default shortest float32 representation)")
	flag.StringVar(&prompt, "prompt", "> ", "prompt to print before reading each line from a terminal")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&dump, "dump", false, "dump tokens to stderr")
	flag.BoolVar(&rightpow, "right-pow", false, "make ^ right-associative")
	flag.BoolVar(&closeopen, "close-open", false, "discard unclosed brackets instead of reporting them")
	flag.IntVar(&runes, "max-runes", rpn.DefaultMaxRunes, "maximum runes per expression")
	flag.IntVar(&tokens, "max-tokens", rpn.DefaultMaxTokens, "maximum tokens per expression")
	flag.Parse()
	if runes <= 0 {
		log.Fatalf("rune limit (%d) must be positive", runes)
	}
	if tokens <= 0 {
		log.Fatalf("token limit (%d) must be positive", tokens)
	}

	promptSet := false
	flag.Visit(func(f *flag.Flag) { promptSet = promptSet || f.Name == "prompt" })
	if !promptSet && ((inname != "" && inname != "-") || !interactive(os.Stdin)) {
		prompt = ""
	}

	cfg := config{
		verb:   verb,
		prompt: prompt,
		echo:   echo,
		dump:   dump,
	}
	opts := []rpn.Option{rpn.MaxRunes(runes), rpn.MaxTokens(tokens)}
	if rightpow {
		opts = append(opts, rpn.RightPow())
	}
	if closeopen {
		opts = append(opts, rpn.CloseOpen())
	}
	cfg.opts = []rpn.Option{rpn.Preset(opts...)}

	if flag.NArg() > 0 && inname == "" {
		for _, arg := range flag.Args() {
			if err := evalLine(os.Stdout, strings.NewReader(arg), &cfg); err != nil {
				log.Fatal(err)
			}
		}
		return
	}
	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := run(f, os.Stdout, &cfg); err != nil {
		log.Fatal(err)
	}
}

// run evaluates each line of in as an expression and writes results to out.
// Evaluation errors are written in place of results; only errors reading in
// or writing out end the loop.
func run(in io.Reader, out io.Writer, cfg *config) error {
	br := bufio.NewReader(in)
	for {
		if cfg.prompt != "" {
			if _, err := io.WriteString(out, cfg.prompt); err != nil {
				return err
			}
		}
		// First check whether we're done with the input.
		if _, _, err := br.ReadRune(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		br.UnreadRune()
		l := &line{r: br, blank: true}
		err := evalLine(out, l, cfg)
		// Discard whatever the lexer left unread after an error.
		if err := l.skip(); err != nil {
			return err
		}
		if err != nil {
			return err
		}
	}
}

// evalLine evaluates one expression and writes its result or error. The
// returned error is from writing only.
func evalLine(out io.Writer, src io.RuneScanner, cfg *config) error {
	toks, err := rpn.Lex(src, cfg.opts...)
	if l, ok := src.(*line); ok && l.blank && err == nil {
		return nil
	}
	if cfg.dump {
		log.Print(spew.Sdump(toks))
	}
	if err != nil {
		_, err = fmt.Fprintln(out, err)
		return err
	}
	pf, err := rpn.Postfix(toks, cfg.opts...)
	if err != nil {
		_, err = fmt.Fprintln(out, err)
		return err
	}
	r, err := rpn.EvalPostfix(pf, cfg.opts...)
	if err != nil {
		_, err = fmt.Fprintln(out, err)
		return err
	}
	if cfg.echo {
		if _, err := fmt.Fprintf(out, "%s : ", postfixText(pf)); err != nil {
			return err
		}
	}
	if cfg.verb != "" {
		_, err = fmt.Fprintf(out, cfg.verb+"\n", r)
		return err
	}
	_, err = fmt.Fprintln(out, rpn.Format(r))
	return err
}

func postfixText(toks []rpn.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text())
	}
	return b.String()
}

// line is an io.RuneScanner over a single line of a larger input. It reports
// io.EOF at the newline, which it consumes.
type line struct {
	r *bufio.Reader
	// eol is set once the newline or the end of r has been read.
	eol bool
	// unread is whether UnreadRune may be called.
	unread bool
	// blank is whether every rune read so far has been whitespace.
	blank bool
	// err is the first error other than io.EOF from r.
	err error
}

func (l *line) ReadRune() (rune, int, error) {
	l.unread = false
	if l.eol {
		return 0, 0, io.EOF
	}
	c, sz, err := l.r.ReadRune()
	if err != nil {
		l.eol = true
		if err != io.EOF {
			l.err = err
		}
		return 0, 0, err
	}
	if c == '\n' {
		l.eol = true
		return 0, 0, io.EOF
	}
	switch c {
	case ' ', '\t', '\r':
	default:
		l.blank = false
	}
	l.unread = true
	return c, sz, nil
}

func (l *line) UnreadRune() error {
	if !l.unread {
		return bufio.ErrInvalidUnreadRune
	}
	l.unread = false
	return l.r.UnreadRune()
}

// skip reads through the end of the line. The result is any read error
// other than io.EOF.
func (l *line) skip() error {
	for !l.eol {
		l.ReadRune()
	}
	return l.err
}

func infile(inname string) (io.ReadCloser, error) {
	switch inname {
	case "", "-":
		return io.NopCloser(os.Stdin), nil
	default:
		return os.Open(inname)
	}
}

// interactive reports whether f is a terminal.
func interactive(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
