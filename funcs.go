package latexcalc

import (
	"math"
	"strings"
)

// Functions take one argument. All but sqrt work on the real part of their
// argument only and discard any imaginary part.
var globalfuncs = map[string]func(Value) Value{
	"sin": realfn(math.Sin),
	"cos": realfn(math.Cos),
	"tan": realfn(math.Tan),
	"sec": realfn(func(x float64) float64 { return 1 / math.Cos(x) }),
	"csc": realfn(func(x float64) float64 { return 1 / math.Sin(x) }),
	"cot": realfn(func(x float64) float64 { return 1 / math.Tan(x) }),

	"sinh": realfn(math.Sinh),
	"cosh": realfn(math.Cosh),
	"tanh": realfn(math.Tanh),
	"sech": realfn(func(x float64) float64 { return 1 / math.Cosh(x) }),
	"csch": realfn(func(x float64) float64 { return 1 / math.Sinh(x) }),
	"coth": realfn(func(x float64) float64 { return 1 / math.Tanh(x) }),

	"floor": realfn(math.Floor),
	"ceil":  realfn(math.Ceil),

	"sqrt": sqrt,
}

func realfn(f func(float64) float64) func(Value) Value {
	return func(v Value) Value {
		return Real(f(v.Re()))
	}
}

// Funcs returns the sorted names of the functions formulas can call.
func Funcs() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// IsFunc reports whether name is a function.
func IsFunc(name string) bool {
	_, ok := globalfuncs[name]
	return ok
}

// funcprefix returns the length of the longest function name that s starts
// with, or 0 if there is none.
func funcprefix(s string) int {
	n := 0
	for k := range globalfuncs {
		if len(k) > n && strings.HasPrefix(s, k) {
			n = len(k)
		}
	}
	return n
}

// funcsuffix reports whether the run of letters ending at s[k-1] is exactly a
// function name.
func funcsuffix(s string, k int) bool {
	i := k
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	return i < k && IsFunc(s[i:k])
}
