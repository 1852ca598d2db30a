// Package isa describes instruction sets as a mapping from opcode to the
// argument signature the opcode requires.
package isa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sarchlab/ippcode/instr"
)

// Signature lists the argument kinds an opcode takes, in position order.
type Signature []instr.ArgSpec

// Arity is the fixed number of arguments.
func (s Signature) Arity() int {
	return len(s)
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, spec := range s {
		parts[i] = spec.String()
	}
	return strings.Join(parts, " ")
}

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA, also the language identifier of emitted documents.
	isaName string
	// map from upper case opcode to its argument signature.
	nameToSignature map[string]Signature
}

// NewISA creates an empty instruction set.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:         name,
		nameToSignature: make(map[string]Signature),
	}
}

// Name returns the name of the instruction set.
func (isa *ISA) Name() string {
	return isa.isaName
}

// Register adds an opcode. Each opcode has exactly one signature, so
// registering the same opcode twice panics.
func (isa *ISA) Register(opcode string, args ...instr.ArgSpec) {
	name := strings.ToUpper(opcode)
	if _, exists := isa.nameToSignature[name]; exists {
		panic(fmt.Sprintf("opcode %s registered twice in %s", name, isa.isaName))
	}

	isa.nameToSignature[name] = append(Signature(nil), args...)
}

// Lookup finds the signature of an opcode, ignoring case.
func (isa *ISA) Lookup(opcode string) (Signature, bool) {
	sig, ok := isa.nameToSignature[strings.ToUpper(opcode)]
	return sig, ok
}

// Opcodes returns every registered opcode in alphabetical order.
func (isa *ISA) Opcodes() []string {
	names := make([]string, 0, len(isa.nameToSignature))
	for name := range isa.nameToSignature {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
