// Package api defines the driver that translates IPPcode24 source into its
// XML document.
package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/document"
	"github.com/sarchlab/ippcode/isa"
)

// Driver provides the interface to run a translation.
type Driver interface {
	// Parse reads the whole source from r and returns the document built
	// from it. The first failing line aborts the translation.
	Parse(r io.Reader) (*document.Document, error)

	// Translate parses the source from r and writes the serialized document
	// to w in a single write. Nothing is written when the translation fails.
	Translate(r io.Reader, w io.Writer) error
}

type state int

const (
	stateAwaitHeader state = iota
	stateProcessing
	stateDone
)

func (s state) String() string {
	switch s {
	case stateAwaitHeader:
		return "AwaitHeader"
	case stateProcessing:
		return "Processing"
	case stateDone:
		return "Done"
	}
	return "Unknown"
}

type driverImpl struct {
	name   string
	isa    *isa.ISA
	parser *core.Parser
	header string
	indent string
}

// translation holds the state of one run over one source.
type translation struct {
	*driverImpl

	state state
	doc   *document.Document
}

// Parse runs the header check and the per-line validation.
func (d *driverImpl) Parse(r io.Reader) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInput, err)
	}

	if len(bytes.TrimSpace(src)) == 0 {
		return nil, core.ErrEmptyInput
	}

	t := &translation{
		driverImpl: d,
		state:      stateAwaitHeader,
		doc:        document.New(d.isa.Name()),
	}

	for i, line := range strings.Split(string(src), "\n") {
		if err := t.feed(i+1, line); err != nil {
			slog.Debug("Translation failed",
				"driver", d.name, "state", t.state, "err", err)
			return nil, err
		}
	}

	return t.finish()
}

// Translate parses the source and writes the document.
func (d *driverImpl) Translate(r io.Reader, w io.Writer) error {
	doc, err := d.Parse(r)
	if err != nil {
		return err
	}

	out, err := doc.MarshalIndent(d.indent)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %v", core.ErrOutput, err)
	}

	return nil
}

func (t *translation) feed(lineNo int, line string) error {
	tokens := core.NormalizeLine(line)
	if len(tokens) == 0 {
		return nil
	}

	switch t.state {
	case stateAwaitHeader:
		return t.acceptHeader(lineNo, tokens)
	case stateProcessing:
		return t.acceptInstruction(lineNo, tokens)
	}

	panic(fmt.Sprintf("line fed in state %s", t.state))
}

func (t *translation) acceptHeader(lineNo int, tokens []string) error {
	if len(tokens) != 1 || tokens[0] != t.header {
		return &core.LineError{
			Line: lineNo,
			Err: fmt.Errorf("%w: expected %q, found %q",
				core.ErrHeader, t.header, strings.Join(tokens, " ")),
		}
	}

	slog.Debug("Header accepted", "driver", t.name, "line", lineNo)
	t.state = stateProcessing

	return nil
}

func (t *translation) acceptInstruction(lineNo int, tokens []string) error {
	inst, err := t.parser.ParseInstruction(tokens)
	if err != nil {
		return &core.LineError{Line: lineNo, Err: err}
	}

	inst = t.doc.Append(inst)
	core.Trace("Instruction",
		"driver", t.name,
		"line", lineNo,
		"order", inst.Order,
		"opcode", inst.Opcode,
		"args", inst.Args,
	)

	return nil
}

func (t *translation) finish() (*document.Document, error) {
	if t.state == stateAwaitHeader {
		return nil, fmt.Errorf("%w: %q not found", core.ErrHeader, t.header)
	}

	t.state = stateDone
	slog.Debug("Translation done",
		"driver", t.name, "instructions", t.doc.Len())

	return t.doc, nil
}
