package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type xmlProgram struct {
	XMLName      xml.Name         `xml:"program"`
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  int      `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

func (d *Document) toXML() xmlProgram {
	p := xmlProgram{
		Language:     d.language,
		Instructions: make([]xmlInstruction, 0, len(d.instructions)),
	}

	for _, inst := range d.instructions {
		x := xmlInstruction{
			Order:  inst.Order,
			Opcode: inst.Opcode,
			Args:   make([]xmlArg, 0, len(inst.Args)),
		}
		for _, arg := range inst.Args {
			x.Args = append(x.Args, xmlArg{
				XMLName: xml.Name{Local: fmt.Sprintf("arg%d", arg.Position)},
				Type:    string(arg.Type),
				Value:   arg.Value,
			})
		}
		p.Instructions = append(p.Instructions, x)
	}

	return p
}

// MarshalIndent renders the whole document, XML declaration included.
// Each nesting level is indented by indent; an empty indent produces the
// document on a single line after the declaration.
func (d *Document) MarshalIndent(indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(d.toXML()); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
