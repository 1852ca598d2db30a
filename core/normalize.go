package core

import "strings"

// NormalizeLine removes the comment and splits what remains of a source
// line into whitespace separated tokens. A '#' always starts a comment,
// even inside a string constant.
func NormalizeLine(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	return strings.Fields(line)
}
