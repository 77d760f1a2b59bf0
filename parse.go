package latexcalc

// Compile normalizes a formula and compiles it to a postfix program using the
// given constants. The only error Compile returns is a *LexError for a
// malformed number; unbalanced parentheses instead produce a Compilation that
// is not Valid, which Exec refuses to run.
func Compile(src string, consts ConstantTable) (*Compilation, error) {
	toks, err := tokens(Normalize(src))
	if err != nil {
		return nil, err
	}
	return compile(toks, consts), nil
}

// compile converts tokens to postfix with the shunting-yard algorithm.
func compile(toks []lexToken, consts ConstantTable) *Compilation {
	c := &Compilation{Code: make([]Instr, 0, len(toks)), Valid: true}
	// ops is the operator stack. It holds tokens so that unbalanced
	// parentheses can be reported with their positions.
	var ops []lexToken
	pop := func() lexToken {
		tok := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return tok
	}
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			c.emit(Instr{Op: OpPushNum, Val: Real(tok.num)})
		case tokenIdent:
			if IsFunc(tok.text) {
				ops = shunt(c, ops, tok)
				continue
			}
			if v, ok := consts.Lookup(tok.text); ok {
				c.emit(Instr{Op: OpPushNum, Val: v})
				continue
			}
			c.usevar(tok.text)
			c.emit(Instr{Op: OpPushVar, Sym: tok.text})
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenOpen {
				c.emit(apply(pop().text))
			}
			if len(ops) == 0 {
				c.invalid(&ParseError{Col: tok.pos, Right: tok.text})
				continue
			}
			pop()
		case tokenOp:
			ops = shunt(c, ops, tok)
		default:
			panic("latexcalc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		tok := pop()
		if tok.kind == tokenOpen {
			c.invalid(&ParseError{Col: tok.pos, Left: tok.text})
			continue
		}
		c.emit(apply(tok.text))
	}
	return c
}

// shunt moves operators that bind at least as tightly as tok from the
// operator stack to the program, then pushes tok.
func shunt(c *Compilation, ops []lexToken, tok lexToken) []lexToken {
	in := lookup(tok.text)
	for len(ops) > 0 {
		head := ops[len(ops)-1]
		if head.kind == tokenOpen || !lookup(head.text).yields(in) {
			break
		}
		c.emit(apply(head.text))
		ops = ops[:len(ops)-1]
	}
	return append(ops, tok)
}

func apply(sym string) Instr {
	return Instr{Op: OpApply, Sym: sym, Arity: lookup(sym).arity}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands.
	arity int
}

// yields reports whether an operator p on top of the operator stack must be
// output before pushing in.
func (p operator) yields(in operator) bool {
	if in.right {
		return in.prec < p.prec
	}
	return in.prec <= p.prec
}

// lookup gets the operator for a symbol. Symbols that are neither operators
// nor functions have precedence 0 and arity 0.
func lookup(sym string) operator {
	switch sym {
	case "+", "-":
		return operator{7, false, 2}
	case "*", "/":
		return operator{8, false, 2}
	case "^", "^+", "^-":
		// Left-associative, so 2^3^2 is 64.
		return operator{9, false, 2}
	}
	if IsFunc(sym) {
		return operator{10, true, 1}
	}
	return operator{}
}
