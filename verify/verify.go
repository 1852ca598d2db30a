// Package verify checks that an emitted document is a faithful translation
// of its source program.
//
// A document passes when decoding it yields the translated instructions
// again: the same count, order numbers 1..n, opcodes, and argument types and
// text. Issues come in two kinds:
//
//   - STRUCT: the document does not decode (see document.Decode)
//   - MISMATCH: the decoded instructions differ from the expected ones
package verify

import (
	"bytes"
	"fmt"

	"github.com/sarchlab/ippcode/document"
	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/isa"
)

// IssueType classifies an Issue.
type IssueType string

const (
	IssueStruct   IssueType = "STRUCT"
	IssueMismatch IssueType = "MISMATCH"
)

// Issue is one finding of a verification.
type Issue struct {
	Type IssueType
	// Order is the instruction the issue is about, -1 for the whole document.
	Order   int
	Message string
	Details map[string]interface{}
}

// RoundTrip decodes data with the instruction set and compares the result
// with want.
func RoundTrip(want []instr.Instruction, data []byte, set *isa.ISA) []Issue {
	doc, err := document.Decode(bytes.NewReader(data), set)
	if err != nil {
		return []Issue{{
			Type:    IssueStruct,
			Order:   -1,
			Message: err.Error(),
		}}
	}

	return Compare(want, doc.Instructions())
}

// Compare matches got against want position by position.
func Compare(want, got []instr.Instruction) []Issue {
	var issues []Issue

	if len(want) != len(got) {
		issues = append(issues, Issue{
			Type:  IssueMismatch,
			Order: -1,
			Message: fmt.Sprintf("Instruction count differs: want %d, got %d",
				len(want), len(got)),
			Details: map[string]interface{}{"want": len(want), "got": len(got)},
		})
	}

	n := min(len(want), len(got))
	for i := 0; i < n; i++ {
		issues = append(issues, compareInstruction(i+1, want[i], got[i])...)
	}

	return issues
}

func compareInstruction(order int, want, got instr.Instruction) []Issue {
	var issues []Issue

	mismatch := func(msg string, details map[string]interface{}) {
		issues = append(issues, Issue{
			Type:    IssueMismatch,
			Order:   order,
			Message: msg,
			Details: details,
		})
	}

	if got.Order != order {
		mismatch(fmt.Sprintf("Instruction %d carries order %d", order, got.Order),
			map[string]interface{}{"order": got.Order})
	}

	if want.Equal(got) {
		return issues
	}

	if want.Opcode != got.Opcode {
		mismatch(fmt.Sprintf("Opcode differs: want %s, got %s", want.Opcode, got.Opcode),
			map[string]interface{}{"want": want.Opcode, "got": got.Opcode})
		return issues
	}

	if len(want.Args) != len(got.Args) {
		mismatch(fmt.Sprintf("%s argument count differs: want %d, got %d",
			want.Opcode, len(want.Args), len(got.Args)), nil)
		return issues
	}

	for i := range want.Args {
		if want.Args[i] != got.Args[i] {
			mismatch(fmt.Sprintf("%s arg%d differs: want %s, got %s",
				want.Opcode, i+1, want.Args[i], got.Args[i]),
				map[string]interface{}{
					"position": i + 1,
					"want":     want.Args[i].String(),
					"got":      got.Args[i].String(),
				})
		}
	}

	return issues
}
