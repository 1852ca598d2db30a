package api

import (
	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/isa"
)

// DefaultHeader is the line every IPPcode24 program starts with.
const DefaultHeader = ".IPPcode24"

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	isa    *isa.ISA
	header string
	indent string
}

// NewDriverBuilder returns a builder for the IPPcode24 instruction set with
// the standard header and tab indentation.
func NewDriverBuilder() DriverBuilder {
	return DriverBuilder{
		isa:    isa.IPPcode24,
		header: DefaultHeader,
		indent: "\t",
	}
}

// WithISA sets the instruction set. Its name becomes the language of the
// emitted documents.
func (b DriverBuilder) WithISA(set *isa.ISA) DriverBuilder {
	b.isa = set
	return b
}

// WithHeader sets the header line required before the first instruction.
// The match is exact and case sensitive.
func (b DriverBuilder) WithHeader(header string) DriverBuilder {
	b.header = header
	return b
}

// WithIndent sets the indentation of one nesting level in the output.
func (b DriverBuilder) WithIndent(indent string) DriverBuilder {
	b.indent = indent
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.isa == nil {
		panic("instruction set is not set")
	}
	if b.header == "" {
		panic("header is not set")
	}

	return &driverImpl{
		name:   name,
		isa:    b.isa,
		parser: core.NewParser(b.isa),
		header: b.header,
		indent: b.indent,
	}
}
