package document

import "strings"

// SplitText cuts text into lines, each keeping its trailing newline. Text
// ending in a newline yields no empty final line, and only a final run with
// no newline is left unterminated, so joining the result byte-for-byte
// reproduces the input. Empty text yields no lines.
func SplitText(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line(p)
	}
	return lines
}
