package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage reports an invalid command line or environment setting.
	ErrUsage = errors.New("invalid usage")
	// ErrInput reports that the source could not be read.
	ErrInput = errors.New("cannot read input")
	// ErrOutput reports that the document could not be written.
	ErrOutput = errors.New("cannot write output")
	// ErrEmptyInput reports a source without any non-blank content.
	ErrEmptyInput = errors.New("empty input")
	// ErrHeader reports a missing or wrong language header.
	ErrHeader = errors.New("missing or invalid header")
	// ErrUnknownOpcode reports an opcode outside the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrSyntax reports a lexical or syntactic error in an instruction.
	ErrSyntax = errors.New("syntax error")
	// ErrArity reports a wrong number of arguments.
	ErrArity = fmt.Errorf("%w: wrong number of arguments", ErrSyntax)
	// ErrArgument reports an argument of the wrong shape.
	ErrArgument = fmt.Errorf("%w: malformed argument", ErrSyntax)
	// ErrFormat reports a document that is not well-formed XML.
	ErrFormat = errors.New("malformed document")
	// ErrStructure reports a well-formed document with unexpected content.
	ErrStructure = errors.New("unexpected document structure")
)

// Exit codes of the command line tools.
const (
	ExitOK            = 0
	ExitUsage         = 10
	ExitInput         = 11
	ExitOutput        = 12
	ExitHeader        = 21
	ExitUnknownOpcode = 22
	ExitSyntax        = 23
	ExitFormat        = 31
	ExitStructure     = 32
	ExitInternal      = 99
)

// LineError attaches the 1-based source line to a translation error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInput):
		return ExitInput
	case errors.Is(err, ErrOutput):
		return ExitOutput
	case errors.Is(err, ErrHeader):
		return ExitHeader
	case errors.Is(err, ErrUnknownOpcode):
		return ExitUnknownOpcode
	case errors.Is(err, ErrSyntax):
		return ExitSyntax
	case errors.Is(err, ErrFormat):
		return ExitFormat
	case errors.Is(err, ErrStructure):
		return ExitStructure
	}

	return ExitInternal
}
