package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/latexcalc"
)

// calc evaluates formulas with the settings given on the command line.
type calc struct {
	// x is the variable value, or nil if none was given.
	x       *latexcalc.Value
	places  int32
	lenient bool
	log     zerolog.Logger
}

// eval evaluates src with its variable set to x and formats the result.
func (c *calc) eval(src string, x *latexcalc.Value) (string, error) {
	p, err := latexcalc.Compile(src, latexcalc.Constants())
	if err != nil {
		return "", err
	}
	c.log.Debug().
		Str("formula", src).
		Stringer("program", p).
		Bool("valid", p.Valid).
		Msg("compiled")
	c.check(p)
	var opts []latexcalc.Option
	if x != nil {
		opts = append(opts, latexcalc.VarValue(*x))
	}
	if c.lenient {
		opts = append(opts, latexcalc.Lenient())
	}
	v, err := latexcalc.Run(p, opts...)
	if err != nil {
		return "", err
	}
	return format(v, c.places), nil
}

// check warns about variable names that look like misspelled functions or
// constants, and about formulas that spell their variable more than one way.
func (c *calc) check(p *latexcalc.Compilation) {
	vars := p.Vars()
	for _, name := range vars {
		if s := suggest(name, knownNames); s != "" {
			c.log.Warn().
				Str("name", name).
				Str("suggestion", s).
				Msg("unknown name evaluates as the variable")
		}
	}
	if len(vars) > 1 {
		c.log.Warn().Strs("names", vars).Msg("all names refer to the same variable")
	}
}

// echo prints the normalized formula and its program.
func (c *calc) echo(w io.Writer, src string) {
	n := latexcalc.Normalize(src)
	p, err := latexcalc.Compile(src, latexcalc.Constants())
	if err != nil {
		fmt.Fprintf(w, "%s : %v\n", n, err)
		return
	}
	fmt.Fprintf(w, "%s : %v\n", n, p)
}

// batch evaluates each entry. An entry's own x overrides c.x.
func (c *calc) batch(entries []batchEntry) []batchResult {
	res := make([]batchResult, 0, len(entries))
	for _, e := range entries {
		x := c.x
		if e.X != nil {
			v := latexcalc.Real(*e.X)
			x = &v
		}
		r := batchResult{Name: e.Name, Expr: e.Expr, X: e.X}
		s, err := c.eval(e.Expr, x)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Result = s
		}
		res = append(res, r)
	}
	return res
}
