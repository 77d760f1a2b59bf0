package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zephyrtronium/latexcalc"
)

func TestSuggest(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"x", ""},
		{"t", ""},
		{"theta", ""},
		{"ab", ""},
		{"sinx", "sin"},
		{"flor", "floor"},
		{"sqr", "sqrt"},
		{"co", "cos"},
		{"Pi", "pi"},
	}
	for _, c := range cases {
		if got := suggest(c.name, knownNames); got != c.want {
			t.Errorf("%q: want %q, got %q", c.name, c.want, got)
		}
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name string
		src  string
		logs []string
	}{
		{"clean", "2x+1", nil},
		{"misspelled", "2sinx", []string{"WRN", "name=sinx", "suggestion=sin"}},
		{"spellings", "x+y", []string{"WRN", "same variable"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			k := &calc{log: newLogger(&buf, false)}
			p, err := latexcalc.Compile(c.src, latexcalc.Constants())
			if err != nil {
				t.Fatal(err)
			}
			k.check(p)
			out := buf.String()
			if c.logs == nil && out != "" {
				t.Errorf("unexpected logs: %q", out)
			}
			for _, s := range c.logs {
				if !strings.Contains(out, s) {
					t.Errorf("logs %q do not contain %q", out, s)
				}
			}
		})
	}
}

func TestEvalLogs(t *testing.T) {
	var buf bytes.Buffer
	c := &calc{places: 12, log: newLogger(&buf, true)}
	r, err := c.eval("2+3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if r != "5" {
		t.Errorf("want 5, got %q", r)
	}
	if out := buf.String(); !strings.Contains(out, "DBG") || !strings.Contains(out, "2 3 +") {
		t.Errorf("missing debug log: %q", out)
	}

	buf.Reset()
	c.log = newLogger(&buf, false)
	if _, err := c.eval("2+3", nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected logs: %q", buf.String())
	}
}

func TestEvalLenient(t *testing.T) {
	var buf bytes.Buffer
	c := &calc{places: 12, log: newLogger(&buf, false)}
	if _, err := c.eval("(2+3", nil); err == nil {
		t.Error("no error for unbalanced formula")
	}
	c.lenient = true
	r, err := c.eval("(2+3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if r != "5" {
		t.Errorf("want 5, got %q", r)
	}
	x := latexcalc.Real(4)
	if r, err := c.eval(`\frac{x}{2}`, &x); err != nil || r != "2" {
		t.Errorf("want 2, got %q, %v", r, err)
	}
}
