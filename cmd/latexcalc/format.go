package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/latexcalc"
)

// format renders a result rounded to places decimal places. A complex result
// whose imaginary part rounds to zero prints as a real number.
func format(v *latexcalc.Value, places int32) string {
	if v == nil {
		return ""
	}
	re := fmtpart(v.Re(), places)
	if !v.IsComplex() {
		return re
	}
	im := v.Im()
	if math.IsNaN(im) || math.IsInf(im, 0) {
		s := strconv.FormatFloat(im, 'g', -1, 64)
		if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
			s = "+" + s
		}
		return re + s + "i"
	}
	d := decimal.NewFromFloat(im).Round(places)
	switch {
	case d.IsZero():
		return re
	case d.IsNegative():
		return re + "-" + d.Abs().String() + "i"
	default:
		return re + "+" + d.String() + "i"
	}
}

func fmtpart(x float64, places int32) string {
	// decimal has no infinities or NaN.
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return decimal.NewFromFloat(x).Round(places).String()
}
