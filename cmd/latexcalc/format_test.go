package main

import (
	"math"
	"testing"

	"github.com/zephyrtronium/latexcalc"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		v      latexcalc.Value
		places int32
		want   string
	}{
		{"int", latexcalc.Real(10), 12, "10"},
		{"frac", latexcalc.Real(3.5), 12, "3.5"},
		{"noise", latexcalc.Real(0.1 + 0.2), 12, "0.3"},
		{"places", latexcalc.Real(1234.5678), 2, "1234.57"},
		{"tiny", latexcalc.Real(-1e-17), 12, "0"},
		{"inf", latexcalc.Real(math.Inf(1)), 12, "+Inf"},
		{"nan", latexcalc.Real(math.NaN()), 12, "NaN"},
		{"imag", latexcalc.Complex(0, 2), 12, "0+2i"},
		{"negImag", latexcalc.Complex(1, -1), 12, "1-1i"},
		{"roundedImag", latexcalc.Complex(-1, 1.2246467991473532e-16), 12, "-1"},
		{"infImag", latexcalc.Complex(0, math.Inf(-1)), 12, "0-Infi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := format(&c.v, c.places); got != c.want {
				t.Errorf("%v to %d places: want %q, got %q", c.v, c.places, c.want, got)
			}
		})
	}
	if got := format(nil, 12); got != "" {
		t.Errorf("nil formats as %q", got)
	}
}
