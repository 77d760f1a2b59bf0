package latexcalc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits used to derive the default constants.
// It must exceed 53 so the float64 values are correctly rounded.
const constprec = 64

// ConstantTable maps names to fixed values. A ConstantTable is immutable;
// With returns a modified copy. The zero value has no constants.
type ConstantTable struct {
	m map[string]Value
}

var defaultConsts = ConstantTable{m: map[string]Value{
	"e":  Real(bigconst(func(z *big.Float) *big.Float { return bigfloat.Exp(z, big.NewFloat(1)) })),
	"pi": Real(bigconst(bigfloat.Pi)),
	"i":  Complex(0, 1),
}}

// bigconst computes a constant at constprec bits and rounds it to float64.
func bigconst(f func(z *big.Float) *big.Float) float64 {
	z := new(big.Float).SetPrec(constprec)
	f(z)
	x, _ := z.Float64()
	return x
}

// Constants returns the default constant table, which has e, pi, and the
// imaginary unit i.
func Constants() ConstantTable {
	return defaultConsts
}

// NewConstantTable creates a constant table from a map. The map is copied.
func NewConstantTable(m map[string]Value) ConstantTable {
	t := ConstantTable{m: make(map[string]Value, len(m))}
	for k, v := range m {
		t.m[k] = v
	}
	return t
}

// Lookup returns the value of a constant.
func (t ConstantTable) Lookup(name string) (Value, bool) {
	v, ok := t.m[name]
	return v, ok
}

// With returns a copy of t with name set to v.
func (t ConstantTable) With(name string, v Value) ConstantTable {
	n := NewConstantTable(t.m)
	n.m[name] = v
	return n
}

// Names returns the sorted names of the constants in t.
func (t ConstantTable) Names() []string {
	names := make([]string, 0, len(t.m))
	for k := range t.m {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
