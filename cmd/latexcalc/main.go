package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/latexcalc"
)

func main() {
	var (
		inname, batch     string
		x                 *latexcalc.Value
		digits            int
		nl, echo, lenient bool
		verbose           bool
	)
	setx := func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v := latexcalc.Real(f)
		x = &v
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("x", "value of the formula variable", setx)
	flag.IntVar(&digits, "digits", 12, "decimal places to round results to")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate formulas")
	flag.BoolVar(&echo, "echo", false, "print normalized formulas and compiled programs")
	flag.BoolVar(&lenient, "lenient", false, "evaluate formulas with unbalanced parentheses")
	flag.StringVar(&batch, "batch", "", "YAML file of formulas to evaluate, writing YAML results")
	flag.BoolVar(&verbose, "v", false, "log compilation details")
	flag.Parse()

	logger := newLogger(os.Stderr, verbose)
	if digits < 0 {
		logger.Fatal().Int("digits", digits).Msg("digits must not be negative")
	}
	c := &calc{
		x:       x,
		places:  int32(digits),
		lenient: lenient,
		log:     logger,
	}

	if batch != "" {
		f, err := os.Open(batch)
		if err != nil {
			logger.Fatal().Err(err).Msg("opening batch file")
		}
		entries, err := readBatch(f)
		f.Close()
		if err != nil {
			logger.Fatal().Err(err).Str("file", batch).Msg("reading batch file")
		}
		if err := writeBatch(os.Stdout, c.batch(entries)); err != nil {
			logger.Fatal().Err(err).Msg("writing results")
		}
		return
	}

	srcs, err := inputs(inname, flag.NArg() == 0, nl)
	if err != nil {
		logger.Fatal().Err(err).Msg("reading input")
	}
	srcs = append(srcs, flag.Args()...)
	for _, src := range srcs {
		if echo {
			c.echo(os.Stdout, src)
		}
		r, err := c.eval(src, c.x)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(level)
}

// inputs reads formulas from a file, or from stdin if inname is "-" or std is
// true. With nl, each non-blank line is a separate formula.
func inputs(inname string, std, nl bool) ([]string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return splitInput(bufio.NewReader(f), nl)
}

func splitInput(r io.Reader, nl bool) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !nl {
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) != "" {
			srcs = append(srcs, line)
		}
	}
	return srcs, nil
}
