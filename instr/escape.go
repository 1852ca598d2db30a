package instr

import (
	"fmt"
	"strings"
)

// DecodeString replaces every \ddd escape of a string constant value with
// the character whose code is ddd.
func DecodeString(value string) (string, error) {
	if !strings.Contains(value, `\`) {
		return value, nil
	}

	var sb strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] != '\\' {
			sb.WriteByte(value[i])
			continue
		}

		if i+3 >= len(value) {
			return "", fmt.Errorf("truncated escape sequence at offset %d", i)
		}

		code := 0
		for _, d := range value[i+1 : i+4] {
			if d < '0' || d > '9' {
				return "", fmt.Errorf("invalid escape sequence %q", value[i:i+4])
			}
			code = code*10 + int(d-'0')
		}

		sb.WriteRune(rune(code))
		i += 3
	}

	return sb.String(), nil
}
