package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/ippcode/document"
	"github.com/sarchlab/ippcode/instr"
)

// VerificationReport represents a decoded document and the issues found in it.
type VerificationReport struct {
	Language     string
	Instructions []instr.Instruction
	Issues       []Issue
}

// NewReport creates a report for a decoded document.
func NewReport(doc *document.Document, issues []Issue) *VerificationReport {
	return &VerificationReport{
		Language:     doc.Language(),
		Instructions: doc.Instructions(),
		Issues:       issues,
	}
}

// OK reports whether no issue was found.
func (r *VerificationReport) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes the instruction listing and the issues to a writer.
func (r *VerificationReport) WriteReport(w io.Writer) {
	listing := table.NewWriter()
	listing.SetTitle(fmt.Sprintf("%s program, %d instructions",
		r.Language, len(r.Instructions)))
	listing.AppendHeader(table.Row{"Order", "Opcode", "Arg1", "Arg2", "Arg3"})

	for _, inst := range r.Instructions {
		row := table.Row{inst.Order, inst.Opcode, "", "", ""}
		for _, arg := range inst.Args {
			row[1+arg.Position] = describeArg(arg)
		}
		listing.AppendRow(row)
	}

	fmt.Fprintln(w, listing.Render())
	fmt.Fprintln(w)

	if r.OK() {
		fmt.Fprintln(w, "✓ No issues found")
		return
	}

	fmt.Fprintf(w, "⚠ Found %d issues:\n", len(r.Issues))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, issue := range r.Issues {
		if issue.Order < 0 {
			fmt.Fprintf(w, "  [%s] %s\n", issue.Type, issue.Message)
			continue
		}
		fmt.Fprintf(w, "  [%s order=%d] %s\n", issue.Type, issue.Order, issue.Message)
	}
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}

// describeArg shows string constants with their escapes decoded.
func describeArg(arg instr.Argument) string {
	if arg.Type != instr.TypeString {
		return arg.String()
	}

	decoded, err := instr.DecodeString(arg.Value)
	if err != nil || decoded == arg.Value {
		return arg.String()
	}

	return fmt.Sprintf("%s (%q)", arg, decoded)
}
