package latexcalc

// Option is an option for Evaluate.
type Option interface {
	evalOption(*evalopts)
}

type evalopts struct {
	x       *Value
	consts  ConstantTable
	lenient bool
}

type (
	varopt    Value
	constsopt ConstantTable
	lenopt    struct{}
)

// Var sets the value of the formula's variable.
func Var(x float64) Option {
	return varopt(Real(x))
}

// VarValue sets the value of the formula's variable, which may be complex.
func VarValue(x Value) Option {
	return varopt(x)
}

func (o varopt) evalOption(p *evalopts) {
	x := Value(o)
	p.x = &x
}

// WithConstants replaces the default constants. Names in the table that are
// also function names are still parsed as functions.
func WithConstants(t ConstantTable) Option {
	return constsopt(t)
}

func (o constsopt) evalOption(p *evalopts) {
	p.consts = ConstantTable(o)
}

// Lenient evaluates formulas even if their parentheses are unbalanced, using
// whatever part of the formula compiled. If evaluation leaves more than one
// value, the last one is the result. This can produce surprising results.
func Lenient() Option {
	return lenopt{}
}

func (lenopt) evalOption(p *evalopts) {
	p.lenient = true
}
