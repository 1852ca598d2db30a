package instr

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Category is the lexical category of a single source token.
type Category int

const (
	// Invalid tokens match none of the token patterns.
	Invalid Category = iota
	// Variable is a frame qualified identifier such as GF@counter.
	Variable
	// Constant is a typed literal such as int@5 or string@hello.
	Constant
	// TypeName is one of the type keywords used by READ.
	TypeName
	// Label is a bare identifier.
	Label
)

func (c Category) String() string {
	switch c {
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	case TypeName:
		return "type"
	case Label:
		return "label"
	}
	return "invalid"
}

var (
	variablePattern = regexp.MustCompile(`^(LF|TF|GF)@[A-Za-z_\-&%*!?][A-Za-z0-9_\-&%*!?]*$`)
	labelPattern    = regexp.MustCompile(`^[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*$`)
	intPattern      = regexp.MustCompile(`^([+-]?[0-9]+|0[xX][0-9a-fA-F]+|0[oO][0-7]+)$`)
	stringPattern   = regexp.MustCompile(`^([^\\]|\\[0-9]{3})*$`)
)

var frames = map[string]bool{"GF": true, "LF": true, "TF": true}

var typeNames = map[string]bool{
	"int":    true,
	"bool":   true,
	"string": true,
	"nil":    true,
}

// Classify returns the lexical category of token. Patterns are tried in the
// order variable, constant, type name, label.
func Classify(token string) Category {
	switch {
	case variablePattern.MatchString(token):
		return Variable
	case isConstant(token):
		return Constant
	case typeNames[token]:
		return TypeName
	case labelPattern.MatchString(token):
		return Label
	}

	return Invalid
}

func isConstant(token string) bool {
	prefix, value, ok := strings.Cut(token, "@")
	if !ok {
		return false
	}

	switch prefix {
	case "int":
		return intPattern.MatchString(value)
	case "bool":
		return value == "true" || value == "false"
	case "string":
		return stringPattern.MatchString(value) && isXMLText(value)
	case "nil":
		return value == "nil"
	}

	return false
}

// isXMLText reports whether s is valid UTF-8 made only of characters an XML
// document can carry.
func isXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= utf8.MaxRune:
		default:
			return false
		}
	}

	return true
}

// ArgSpec is the token kind an instruction requires at one argument position.
type ArgSpec int

const (
	AnyVariable ArgSpec = iota
	AnySymbol
	AnyLabel
	AnyType
)

func (s ArgSpec) String() string {
	switch s {
	case AnyVariable:
		return "var"
	case AnySymbol:
		return "symb"
	case AnyLabel:
		return "label"
	case AnyType:
		return "type"
	}
	return "unknown"
}

// Accepts reports whether token may fill a position that requires s.
//
// Labels share the identifier grammar with type keywords, so AnyLabel is
// checked against the grammar rather than against the category.
func (s ArgSpec) Accepts(token string) bool {
	switch s {
	case AnyVariable:
		return Classify(token) == Variable
	case AnySymbol:
		c := Classify(token)
		return c == Variable || c == Constant
	case AnyLabel:
		return labelPattern.MatchString(token)
	case AnyType:
		return Classify(token) == TypeName
	}

	return false
}

// ArgType is the type attribute an argument carries in the output document.
type ArgType string

const (
	TypeVar    ArgType = "var"
	TypeInt    ArgType = "int"
	TypeBool   ArgType = "bool"
	TypeString ArgType = "string"
	TypeNil    ArgType = "nil"
	TypeLabel  ArgType = "label"
	TypeType   ArgType = "type"
)

// Resolve maps an accepted token to its output type and display value.
// Variables keep the whole token, constants keep the text after the first
// '@', everything else is emitted as written.
func Resolve(spec ArgSpec, token string) (ArgType, string) {
	if prefix, value, ok := strings.Cut(token, "@"); ok {
		if frames[prefix] {
			return TypeVar, token
		}
		if typeNames[prefix] {
			return ArgType(prefix), value
		}
	}

	if spec == AnyLabel {
		return TypeLabel, token
	}

	if typeNames[token] {
		return TypeType, token
	}

	return TypeLabel, token
}
