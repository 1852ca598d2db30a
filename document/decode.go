package document

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/isa"
)

type xmlAnyProgram struct {
	XMLName  xml.Name
	Language string              `xml:"language,attr"`
	Children []xmlAnyInstruction `xml:",any"`
}

type xmlAnyInstruction struct {
	XMLName xml.Name
	Order   string   `xml:"order,attr"`
	Opcode  string   `xml:"opcode,attr"`
	Args    []xmlArg `xml:",any"`
}

// Decode reads a document produced for the instruction set and checks its
// structure: the root is program with the instruction set's name as
// language, children are instruction elements with unique positive order
// numbers and known opcodes, and arguments are arg1 to arg3 matching the
// opcode's arity and well formed for their type.
//
// Instructions are returned sorted by order, keeping their order numbers.
// Malformed XML wraps core.ErrFormat, anything else core.ErrStructure.
func Decode(r io.Reader, set *isa.ISA) (*Document, error) {
	var p xmlAnyProgram
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}

	if p.XMLName.Local != "program" {
		return nil, structureError("root element is %q, not program", p.XMLName.Local)
	}
	if p.Language != set.Name() {
		return nil, structureError("language is %q, not %q", p.Language, set.Name())
	}

	d := New(p.Language)
	seen := make(map[int]bool)
	for _, child := range p.Children {
		inst, err := decodeInstruction(child, set)
		if err != nil {
			return nil, err
		}
		if seen[inst.Order] {
			return nil, structureError("duplicate order %d", inst.Order)
		}
		seen[inst.Order] = true
		d.instructions = append(d.instructions, inst)
	}

	sort.SliceStable(d.instructions, func(i, j int) bool {
		return d.instructions[i].Order < d.instructions[j].Order
	})

	return d, nil
}

func decodeInstruction(x xmlAnyInstruction, set *isa.ISA) (instr.Instruction, error) {
	if x.XMLName.Local != "instruction" {
		return instr.Instruction{}, structureError("unexpected element %q", x.XMLName.Local)
	}

	order, err := strconv.Atoi(strings.TrimSpace(x.Order))
	if err != nil {
		return instr.Instruction{}, structureError("order %q is not a number", x.Order)
	}
	if order < 1 {
		return instr.Instruction{}, structureError("order %d is not positive", order)
	}

	opcode := strings.ToUpper(x.Opcode)
	sig, ok := set.Lookup(opcode)
	if !ok {
		return instr.Instruction{}, structureError("instruction %d has unknown opcode %q", order, x.Opcode)
	}

	var args []instr.Argument
	if sig.Arity() > 0 {
		args = make([]instr.Argument, sig.Arity())
	}
	present := make([]bool, 3)
	for _, a := range x.Args {
		pos := argPosition(a.XMLName.Local)
		if pos == 0 {
			return instr.Instruction{}, structureError("instruction %d has unexpected element %q", order, a.XMLName.Local)
		}
		if present[pos-1] {
			return instr.Instruction{}, structureError("instruction %d repeats %s", order, a.XMLName.Local)
		}
		present[pos-1] = true

		if a.Type == "" {
			return instr.Instruction{}, structureError("instruction %d %s has no type", order, a.XMLName.Local)
		}
		if pos > sig.Arity() {
			return instr.Instruction{}, structureError("%s takes %d arguments, found %s", opcode, sig.Arity(), a.XMLName.Local)
		}

		arg := instr.Argument{
			Position: pos,
			Type:     instr.ArgType(a.Type),
			Value:    strings.TrimSpace(a.Value),
		}
		if !arg.Valid() {
			return instr.Instruction{}, structureError("instruction %d %s: %q is not a valid %s", order, a.XMLName.Local, arg.Value, arg.Type)
		}
		args[pos-1] = arg
	}

	for i := 0; i < sig.Arity(); i++ {
		if !present[i] {
			return instr.Instruction{}, structureError("%s takes %d arguments, arg%d is missing", opcode, sig.Arity(), i+1)
		}
	}

	return instr.Instruction{Order: order, Opcode: opcode, Args: args}, nil
}

func argPosition(name string) int {
	switch name {
	case "arg1":
		return 1
	case "arg2":
		return 2
	case "arg3":
		return 3
	}
	return 0
}

func structureError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", core.ErrStructure, fmt.Sprintf(format, args...))
}
