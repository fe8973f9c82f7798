// Package document holds the in-memory line form of a text file and the
// stores that move it to and from disk. A document is transient: each edit
// loads one, changes its lines, and persists the result.
package document

import "strings"

// Line is one line of a document, carrying its trailing newline when it has
// one. Concatenating a document's lines reproduces the file's exact bytes,
// so only the final line of a document may be unterminated.
type Line string

// Terminated reports whether the line carries its trailing newline.
func (l Line) Terminated() bool {
	return strings.HasSuffix(string(l), "\n")
}

// Text returns the line without its line ending, for display. A carriage
// return before the newline counts as part of the ending.
func (l Line) Text() string {
	s := strings.TrimSuffix(string(l), "\n")
	return strings.TrimSuffix(s, "\r")
}
