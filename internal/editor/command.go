package editor

import (
	"goline/internal/span"
	"goline/pkg/report"
)

// Command is one positional edit operation. The concrete types below are
// the only implementations; the editor dispatches on them by type, so
// adding an operation means adding a type and a handler, not a new string
// to branch on.
type Command interface {
	op() report.Op
}

// Show prints a gutter-numbered window of the document. Zero values for
// Start and End mean their defaults: the first and the last line.
type Show struct {
	Start int
	End   int
}

// Replace substitutes the covered lines with the split lines of Text.
// Empty text removes the covered lines outright.
type Replace struct {
	Range span.Range
	Text  string
}

// Insert places the split lines of Text after line After, where 0 inserts
// before the first line.
type Insert struct {
	After int
	Text  string
}

// Append writes Text verbatim to the end of the file: no splitting, no
// added newline. The file is created when missing.
type Append struct {
	Text string
}

// Delete removes the covered lines.
type Delete struct {
	Range span.Range
}

func (Show) op() report.Op    { return report.OpShow }
func (Replace) op() report.Op { return report.OpReplace }
func (Insert) op() report.Op  { return report.OpInsert }
func (Append) op() report.Op  { return report.OpAppend }
func (Delete) op() report.Op  { return report.OpDelete }
