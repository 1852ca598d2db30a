package isa

import "github.com/sarchlab/ippcode/instr"

// IPPcode24 is the instruction set accepted by the translator.
var IPPcode24 = newIPPcode24()

func newIPPcode24() *ISA {
	var (
		v = instr.AnyVariable
		s = instr.AnySymbol
		l = instr.AnyLabel
		t = instr.AnyType
	)

	set := NewISA("IPPcode24")

	// frames and calls
	set.Register("CREATEFRAME")
	set.Register("PUSHFRAME")
	set.Register("POPFRAME")
	set.Register("DEFVAR", v)
	set.Register("CALL", l)
	set.Register("RETURN")
	set.Register("MOVE", v, s)

	// data stack
	set.Register("PUSHS", s)
	set.Register("POPS", v)

	// arithmetic, relational and boolean
	for _, op := range []string{"ADD", "SUB", "MUL", "IDIV", "LT", "GT", "EQ", "AND", "OR"} {
		set.Register(op, v, s, s)
	}
	set.Register("NOT", v, s)

	// conversions and strings
	set.Register("INT2CHAR", v, s)
	set.Register("STRI2INT", v, s, s)
	set.Register("CONCAT", v, s, s)
	set.Register("STRLEN", v, s)
	set.Register("GETCHAR", v, s, s)
	set.Register("SETCHAR", v, s, s)
	set.Register("TYPE", v, s)

	// input and output
	set.Register("READ", v, t)
	set.Register("WRITE", s)

	// control flow
	set.Register("LABEL", l)
	set.Register("JUMP", l)
	set.Register("JUMPIFEQ", l, s, s)
	set.Register("JUMPIFNEQ", l, s, s)
	set.Register("EXIT", s)

	// debugging
	set.Register("DPRINT", s)
	set.Register("BREAK")

	return set
}
