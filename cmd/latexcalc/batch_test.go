package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/latexcalc"
)

const batchFile = `
- name: half
  expr: '\frac{1}{2}'
- expr: 2x
  x: 3
- expr: (2+3
- expr: 2x+1
`

func TestBatch(t *testing.T) {
	entries, err := readBatch(strings.NewReader(batchFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("want 4 entries, got %+v", entries)
	}
	if entries[0].Name != "half" || entries[0].Expr != `\frac{1}{2}` || entries[0].X != nil {
		t.Errorf("wrong first entry %+v", entries[0])
	}
	if entries[1].X == nil || *entries[1].X != 3 {
		t.Errorf("wrong second entry %+v", entries[1])
	}

	c := &calc{places: 12, log: zerolog.New(io.Discard)}
	res := c.batch(entries)
	want := []batchResult{
		{Name: "half", Expr: `\frac{1}{2}`, Result: "0.5"},
		{Expr: "2x", X: entries[1].X, Result: "6"},
		{Expr: "(2+3", Error: "1: open bracket ( with no close bracket"},
		{Expr: "2x+1", Error: `undefined variable: "x"`},
	}
	if len(res) != len(want) {
		t.Fatalf("want %+v, got %+v", want, res)
	}
	for i := range want {
		if res[i] != want[i] {
			t.Errorf("result %d: want %+v, got %+v", i, want[i], res[i])
		}
	}

	var buf bytes.Buffer
	if err := writeBatch(&buf, res); err != nil {
		t.Fatal(err)
	}
	var back []batchResult
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("results are not YAML: %v\n%s", err, buf.Bytes())
	}
	if len(back) != len(res) || back[1].Result != "6" || back[1].X == nil || *back[1].X != 3 || back[2].Error == "" {
		t.Errorf("wrong results written:\n%s", buf.Bytes())
	}
}

func TestBatchEmpty(t *testing.T) {
	entries, err := readBatch(strings.NewReader(""))
	if err != nil || entries != nil {
		t.Errorf("want nil, nil, got %+v, %v", entries, err)
	}
	if _, err := readBatch(strings.NewReader("expr: [")); err == nil {
		t.Error("no error for bad YAML")
	}
}

func TestBatchVar(t *testing.T) {
	x := latexcalc.Real(10)
	c := &calc{x: &x, places: 12, log: zerolog.New(io.Discard)}
	three := 3.0
	res := c.batch([]batchEntry{{Expr: "2x"}, {Expr: "2x", X: &three}})
	if res[0].Result != "20" || res[1].Result != "6" {
		t.Errorf("wrong results %+v", res)
	}
}

func TestSplitInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		nl   bool
		want []string
	}{
		{"whole", "2+\n3\n", false, []string{"2+\n3\n"}},
		{"blank", " \n\t", false, nil},
		{"lines", "2+3\n\n  \nx\n", true, []string{"2+3", "x"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := splitInput(strings.NewReader(c.in), c.nl)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("want %q, got %q", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("want %q, got %q", c.want, got)
				}
			}
		})
	}
}
