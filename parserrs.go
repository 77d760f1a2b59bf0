package latexcalc

import "strconv"

// ParseError is an error indicating unbalanced parentheses in a formula. It
// implements InputError.
type ParseError struct {
	// Col is the position of the offending bracket in the normalized formula.
	Col int
	// Left is the opening bracket that was never closed, if any.
	Left string
	// Right is the closing bracket that was never opened, if any.
	Right string
}

func (err *ParseError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *ParseError) Pos() int {
	return err.Col
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning.
	Text string
	// Kind is the type of token the lexer was scanning.
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// CompileError is an error indicating an operator that the evaluator does not
// implement. Programs produced by Compile never cause it.
type CompileError struct {
	// Op is the unknown operator symbol.
	Op string
}

func (err *CompileError) Error() string {
	return "unknown operator " + strconv.Quote(err.Op)
}

// MalformedProgramError is an error indicating a program that does not leave
// exactly one value on the evaluation stack: either an operator found fewer
// operands than it needs, or operands were left over at the end. Formulas like
// "sin" or "2(-3)" compile to such programs.
type MalformedProgramError struct {
	// Op is the operator that was short of operands. It is empty if the
	// program ended with too many values.
	Op string
	// Want is the number of operands Op takes, or 1 at the end of a program.
	Want int
	// Have is the number of values that were on the stack.
	Have int
}

func (err *MalformedProgramError) Error() string {
	if err.Op == "" {
		return "inconsistent stack: " + strconv.Itoa(err.Have) + " values at end of program"
	}
	return "operator " + strconv.Quote(err.Op) + " needs " + strconv.Itoa(err.Want) + " operands but has " + strconv.Itoa(err.Have)
}

// NameError is an error from a formula that refers to a variable when no
// variable value was given.
type NameError struct {
	// Name is the spelling of the variable.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// unparseable input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, counted in the
	// normalized formula.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*LexError)(nil)
)
