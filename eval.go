package latexcalc

import "strings"

// Evaluate compiles and evaluates a formula. If the formula is empty or only
// whitespace, the result is nil with no error.
//
// Unless the Lenient option is given, a formula with unbalanced parentheses
// gives a *ParseError rather than a value.
func Evaluate(src string, opts ...Option) (*Value, error) {
	o := evalopts{consts: defaultConsts}
	for _, opt := range opts {
		opt.evalOption(&o)
	}
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	c, err := Compile(src, o.consts)
	if err != nil {
		return nil, err
	}
	return exec(c, o.x, o.lenient)
}

// EvaluateAt is a shortcut to evaluate a formula with its variable set to x.
func EvaluateAt(src string, x float64) (*Value, error) {
	return Evaluate(src, Var(x))
}

// Exec runs a compiled program. x is the value of the program's variable; it
// may be nil if the program has none. If the program is empty, the result is
// nil with no error. Exec returns c.Err() without running anything if c is not
// Valid.
func Exec(c *Compilation, x *Value) (*Value, error) {
	return exec(c, x, false)
}

// Run runs a compiled program with evaluation options. Var, VarValue, and
// Lenient apply as they do for Evaluate. WithConstants has no effect, since
// constants are resolved when the program is compiled.
func Run(c *Compilation, opts ...Option) (*Value, error) {
	var o evalopts
	for _, opt := range opts {
		opt.evalOption(&o)
	}
	return exec(c, o.x, o.lenient)
}

// exec runs a program. In lenient mode, it runs even invalid programs and
// takes the top of the stack as the result.
func exec(c *Compilation, x *Value, lenient bool) (*Value, error) {
	if !c.Valid && !lenient {
		return nil, c.Err()
	}
	stack := make([]Value, 0, len(c.Code)/2+1)
	for _, in := range c.Code {
		switch in.Op {
		case OpPushNum:
			stack = append(stack, in.Val)
		case OpPushVar:
			if x == nil {
				return nil, &NameError{Name: in.Sym}
			}
			stack = append(stack, *x)
		case OpApply:
			if in.Arity < 1 {
				return nil, &CompileError{Op: in.Sym}
			}
			if len(stack) < in.Arity {
				return nil, &MalformedProgramError{Op: in.Sym, Want: in.Arity, Have: len(stack)}
			}
			k := len(stack) - in.Arity
			r, err := call(in.Sym, stack[k:])
			if err != nil {
				return nil, err
			}
			stack = append(stack[:k], r)
		default:
			panic("latexcalc: invalid instruction " + in.Op.String())
		}
	}
	switch {
	case len(stack) == 0:
		return nil, nil
	case len(stack) == 1, lenient:
		r := stack[len(stack)-1]
		return &r, nil
	default:
		return nil, &MalformedProgramError{Want: 1, Have: len(stack)}
	}
}

// call applies an operator or function to its operands, given in left to
// right order.
func call(sym string, args []Value) (Value, error) {
	if len(args) == 2 {
		a, b := args[0], args[1]
		switch sym {
		case "+":
			return add(a, b), nil
		case "-":
			return sub(a, b), nil
		case "*":
			return mul(a, b), nil
		case "/":
			return quo(a, b), nil
		case "^", "^+":
			return pow(a, b), nil
		case "^-":
			return pow(a, b.neg()), nil
		}
		return Value{}, &CompileError{Op: sym}
	}
	f := globalfuncs[sym]
	if f == nil || len(args) != 1 {
		return Value{}, &CompileError{Op: sym}
	}
	return f(args[0]), nil
}
