package latexcalc

import "strings"

// Opcode is the kind of an instruction.
type Opcode int8

const (
	OpNone Opcode = iota

	OpPushNum // push Val
	OpPushVar // push the variable; Sym is the name it was spelled with
	OpApply   // pop Arity operands, apply operator or function Sym, push result
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Opcode -trimprefix=Op
//go:generate go mod tidy

// Instr is a single instruction of a postfix program.
type Instr struct {
	Op    Opcode
	Val   Value
	Sym   string
	Arity int
}

func (in Instr) String() string {
	switch in.Op {
	case OpPushNum:
		return in.Val.String()
	case OpPushVar, OpApply:
		return in.Sym
	default:
		return in.Op.String()
	}
}

// Compilation is a formula compiled to a postfix program. If Valid is false,
// the formula had unbalanced parentheses and Code holds whatever could be
// compiled around them.
type Compilation struct {
	Code  []Instr
	Valid bool

	// err is the first structural defect found.
	err *ParseError
	// vars is the distinct variable names in order of first use.
	vars []string
}

// Err returns the reason c is not valid, or nil if it is.
func (c *Compilation) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Vars returns the distinct names the program uses to refer to its variable,
// in order of first use. Every name binds to the same value.
func (c *Compilation) Vars() []string {
	return append(([]string)(nil), c.vars...)
}

// String lists the program's instructions separated by spaces, e.g. "2 x * 1 +".
func (c *Compilation) String() string {
	var b strings.Builder
	for i, in := range c.Code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(in.String())
	}
	return b.String()
}

func (c *Compilation) emit(in Instr) {
	c.Code = append(c.Code, in)
}

func (c *Compilation) usevar(name string) {
	for _, v := range c.vars {
		if v == name {
			return
		}
	}
	c.vars = append(c.vars, name)
}

// invalid marks c as invalid, keeping the first error.
func (c *Compilation) invalid(err *ParseError) {
	c.Valid = false
	if c.err == nil {
		c.err = err
	}
}
