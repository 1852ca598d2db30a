// Package instr holds the lexical rules of IPPcode24 tokens and the
// validated instruction representation shared by the parser and the
// document encoder.
package instr

import (
	"fmt"
	"strings"
)

// Argument is one validated instruction argument.
type Argument struct {
	// Position is 1-based.
	Position int
	Type     ArgType
	// Value is the text emitted in the document.
	Value string
}

// Token rebuilds the source token the argument was resolved from.
func (a Argument) Token() string {
	switch a.Type {
	case TypeInt, TypeBool, TypeString, TypeNil:
		return string(a.Type) + "@" + a.Value
	}
	return a.Value
}

// Valid reports whether Value is well formed for Type.
func (a Argument) Valid() bool {
	switch a.Type {
	case TypeVar:
		return Classify(a.Value) == Variable
	case TypeInt, TypeBool, TypeString, TypeNil:
		return isConstant(a.Token())
	case TypeLabel:
		return labelPattern.MatchString(a.Value)
	case TypeType:
		return typeNames[a.Value]
	}
	return false
}

func (a Argument) String() string {
	return fmt.Sprintf("%s:%s", a.Type, a.Value)
}

// Instruction is a validated source line.
type Instruction struct {
	// Order is 1-based and assigned when the instruction joins a document.
	// It is zero until then.
	Order  int
	Opcode string
	Args   []Argument
}

// String renders the instruction back in source form.
func (i Instruction) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Opcode)
	for _, arg := range i.Args {
		parts = append(parts, arg.Token())
	}
	return strings.Join(parts, " ")
}

// Equal compares opcode and arguments. Order is ignored.
func (i Instruction) Equal(other Instruction) bool {
	if i.Opcode != other.Opcode || len(i.Args) != len(other.Args) {
		return false
	}

	for n := range i.Args {
		if i.Args[n] != other.Args[n] {
			return false
		}
	}

	return true
}
