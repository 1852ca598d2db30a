package document_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/document"
	"github.com/sarchlab/ippcode/instr"
	"github.com/sarchlab/ippcode/isa"
)

func move() instr.Instruction {
	return instr.Instruction{
		Opcode: "MOVE",
		Args: []instr.Argument{
			{Position: 1, Type: instr.TypeVar, Value: "GF@x"},
			{Position: 2, Type: instr.TypeInt, Value: "5"},
		},
	}
}

var _ = Describe("Document", func() {
	var d *document.Document

	BeforeEach(func() {
		d = document.New("IPPcode24")
	})

	It("should number instructions in append order", func() {
		first := d.Append(move())
		second := d.Append(instr.Instruction{Opcode: "CREATEFRAME"})

		Expect(first.Order).To(Equal(1))
		Expect(second.Order).To(Equal(2))
		Expect(d.Len()).To(Equal(2))
		Expect(d.Instructions()[1].Opcode).To(Equal("CREATEFRAME"))
	})

	It("should ignore an order set by the caller", func() {
		inst := move()
		inst.Order = 42

		Expect(d.Append(inst).Order).To(Equal(1))
	})

	It("should not share argument storage with the caller", func() {
		inst := move()
		d.Append(inst)
		inst.Args[0].Value = "GF@changed"

		Expect(d.Instructions()[0].Args[0].Value).To(Equal("GF@x"))
	})

	Context("when marshalling", func() {
		It("should render instructions and arguments", func() {
			d.Append(move())
			d.Append(instr.Instruction{Opcode: "CREATEFRAME"})

			out, err := d.MarshalIndent("\t")

			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24">
	<instruction order="1" opcode="MOVE">
		<arg1 type="var">GF@x</arg1>
		<arg2 type="int">5</arg2>
	</instruction>
	<instruction order="2" opcode="CREATEFRAME"></instruction>
</program>
`))
		})

		It("should render an empty program", func() {
			out, err := d.MarshalIndent("\t")

			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode24"></program>
`))
		})

		It("should escape reserved characters", func() {
			d.Append(instr.Instruction{
				Opcode: "WRITE",
				Args: []instr.Argument{
					{Position: 1, Type: instr.TypeString, Value: `<a>&"'`},
				},
			})

			out, err := d.MarshalIndent("")

			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(ContainSubstring(
				`<arg1 type="string">&lt;a&gt;&amp;&#34;&#39;</arg1>`))
		})

		It("should put the body on one line without indent", func() {
			d.Append(instr.Instruction{Opcode: "BREAK"})

			out, err := d.MarshalIndent("")

			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(string(out), "\n")).To(Equal(2))
		})
	})
})

var _ = Describe("Decode", func() {
	decode := func(text string) (*document.Document, error) {
		return document.Decode(strings.NewReader(text), isa.IPPcode24)
	}

	It("should read back a marshalled document", func() {
		d := document.New("IPPcode24")
		d.Append(move())
		d.Append(instr.Instruction{
			Opcode: "JUMPIFEQ",
			Args: []instr.Argument{
				{Position: 1, Type: instr.TypeLabel, Value: "end"},
				{Position: 2, Type: instr.TypeString, Value: `a&b\032`},
				{Position: 3, Type: instr.TypeNil, Value: "nil"},
			},
		})
		out, err := d.MarshalIndent("\t")
		Expect(err).NotTo(HaveOccurred())

		got, err := decode(string(out))

		Expect(err).NotTo(HaveOccurred())
		Expect(got.Language()).To(Equal("IPPcode24"))
		Expect(got.Instructions()).To(Equal(d.Instructions()))
	})

	It("should sort by order and keep order numbers", func() {
		got, err := decode(`<program language="IPPcode24">
			<instruction order="10" opcode="break"/>
			<instruction order="3" opcode="DEFVAR"><arg1 type="var"> GF@a </arg1></instruction>
		</program>`)

		Expect(err).NotTo(HaveOccurred())
		insts := got.Instructions()
		Expect(insts).To(HaveLen(2))
		Expect(insts[0].Order).To(Equal(3))
		Expect(insts[0].Args[0].Value).To(Equal("GF@a"))
		Expect(insts[1].Order).To(Equal(10))
		Expect(insts[1].Opcode).To(Equal("BREAK"))
	})

	It("should accept arguments out of element order", func() {
		got, err := decode(`<program language="IPPcode24">
			<instruction order="1" opcode="MOVE">
				<arg2 type="bool">true</arg2>
				<arg1 type="var">LF@b</arg1>
			</instruction>
		</program>`)

		Expect(err).NotTo(HaveOccurred())
		Expect(got.Instructions()[0].Args[0].Position).To(Equal(1))
		Expect(got.Instructions()[0].Args[1].Type).To(Equal(instr.TypeBool))
	})

	It("should reject malformed XML", func() {
		_, err := decode(`<program language="IPPcode24">`)

		Expect(err).To(MatchError(core.ErrFormat))
		Expect(core.ExitCode(err)).To(Equal(31))
	})

	DescribeTable("structure errors",
		func(text string) {
			_, err := decode(text)

			Expect(err).To(MatchError(core.ErrStructure))
			Expect(core.ExitCode(err)).To(Equal(32))
		},
		Entry("wrong root", `<prog language="IPPcode24"/>`),
		Entry("wrong language", `<program language="IPPcode23"/>`),
		Entry("unexpected child", `<program language="IPPcode24"><label/></program>`),
		Entry("non-numeric order", `<program language="IPPcode24"><instruction order="x" opcode="BREAK"/></program>`),
		Entry("zero order", `<program language="IPPcode24"><instruction order="0" opcode="BREAK"/></program>`),
		Entry("duplicate order", `<program language="IPPcode24">
			<instruction order="1" opcode="BREAK"/><instruction order="1" opcode="RETURN"/></program>`),
		Entry("unknown opcode", `<program language="IPPcode24"><instruction order="1" opcode="FOO"/></program>`),
		Entry("missing argument", `<program language="IPPcode24"><instruction order="1" opcode="DEFVAR"/></program>`),
		Entry("extra argument", `<program language="IPPcode24"><instruction order="1" opcode="BREAK">
			<arg1 type="int">1</arg1></instruction></program>`),
		Entry("gap in arguments", `<program language="IPPcode24"><instruction order="1" opcode="MOVE">
			<arg2 type="int">1</arg2><arg3 type="int">1</arg3></instruction></program>`),
		Entry("repeated argument", `<program language="IPPcode24"><instruction order="1" opcode="MOVE">
			<arg1 type="var">GF@a</arg1><arg1 type="var">GF@a</arg1></instruction></program>`),
		Entry("unknown argument element", `<program language="IPPcode24"><instruction order="1" opcode="DEFVAR">
			<arg4 type="var">GF@a</arg4></instruction></program>`),
		Entry("missing type", `<program language="IPPcode24"><instruction order="1" opcode="DEFVAR">
			<arg1>GF@a</arg1></instruction></program>`),
		Entry("bad variable", `<program language="IPPcode24"><instruction order="1" opcode="DEFVAR">
			<arg1 type="var">a</arg1></instruction></program>`),
		Entry("bad int", `<program language="IPPcode24"><instruction order="1" opcode="PUSHS">
			<arg1 type="int">one</arg1></instruction></program>`),
	)
})
