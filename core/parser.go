package core

import (
	"fmt"
	"strings"

	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/isa"
)

// Parser validates normalized source lines against an instruction set.
type Parser struct {
	isa *isa.ISA
}

// NewParser creates a parser for the given instruction set.
func NewParser(set *isa.ISA) *Parser {
	return &Parser{isa: set}
}

// ParseInstruction turns the tokens of one line into an instruction. The
// first token is the opcode, matched without regard to case. The returned
// instruction has no order yet.
//
// Errors wrap ErrUnknownOpcode, ErrArity or ErrArgument, checked in that
// order.
func (p *Parser) ParseInstruction(tokens []string) (instr.Instruction, error) {
	if len(tokens) == 0 {
		return instr.Instruction{}, fmt.Errorf("%w: empty instruction", ErrSyntax)
	}

	opcode := strings.ToUpper(tokens[0])
	sig, ok := p.isa.Lookup(opcode)
	if !ok {
		return instr.Instruction{}, fmt.Errorf("%w: %s", ErrUnknownOpcode, tokens[0])
	}

	args := tokens[1:]
	if len(args) != sig.Arity() {
		return instr.Instruction{}, fmt.Errorf("%w: %s takes %d, got %d",
			ErrArity, opcode, sig.Arity(), len(args))
	}

	inst := instr.Instruction{
		Opcode: opcode,
		Args:   make([]instr.Argument, 0, len(args)),
	}

	for i, token := range args {
		spec := sig[i]
		if !spec.Accepts(token) {
			return instr.Instruction{}, fmt.Errorf("%w: %s arg%d %q is not a %s",
				ErrArgument, opcode, i+1, token, spec)
		}

		argType, value := instr.Resolve(spec, token)
		inst.Args = append(inst.Args, instr.Argument{
			Position: i + 1,
			Type:     argType,
			Value:    value,
		})
	}

	return inst, nil
}
