// Package document builds the XML representation of a translated program
// and reads it back.
package document

import (
	"github.com/sarchlab/ippcode/instr"
)

// Document is an ordered list of instructions tagged with a language.
type Document struct {
	language     string
	instructions []instr.Instruction
}

// New creates an empty document for the given language identifier.
func New(language string) *Document {
	return &Document{language: language}
}

// Language returns the language identifier of the root element.
func (d *Document) Language() string {
	return d.language
}

// Append adds an instruction at the end. Its order becomes the number of
// instructions in the document, counting itself. The stored instruction is
// returned.
func (d *Document) Append(inst instr.Instruction) instr.Instruction {
	inst.Order = len(d.instructions) + 1
	inst.Args = append([]instr.Argument(nil), inst.Args...)
	d.instructions = append(d.instructions, inst)

	return inst
}

// Len returns the number of instructions.
func (d *Document) Len() int {
	return len(d.instructions)
}

// Instructions returns a copy of the instructions in document order.
func (d *Document) Instructions() []instr.Instruction {
	return append([]instr.Instruction(nil), d.instructions...)
}
