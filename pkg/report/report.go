// Package report describes the outcome of one edit operation, in both the
// human phrasing printed by the command line and a JSON form for scripted
// callers.
package report

import "fmt"

// Op names the operation a report describes.
type Op string

const (
	OpShow    Op = "show"
	OpReplace Op = "replace"
	OpInsert  Op = "insert"
	OpAppend  Op = "append"
	OpDelete  Op = "delete"
)

// Report is the outcome of one operation against one file. StartLine and
// EndLine bound the affected lines: the shown, replaced, or deleted range,
// or the final position of inserted lines.
type Report struct {
	Op           Op       `json:"op"`
	Path         string   `json:"path"`
	StartLine    int      `json:"start_line,omitempty"`
	EndLine      int      `json:"end_line,omitempty"`
	LinesRemoved int      `json:"lines_removed"`
	LinesAdded   int      `json:"lines_added"`
	BytesWritten int      `json:"bytes_written,omitempty"`
	Lines        []string `json:"lines,omitempty"`
}

// String returns the one-line summary printed after a successful edit.
// Show reports nothing; its output is the lines themselves.
func (r *Report) String() string {
	switch r.Op {
	case OpReplace:
		return fmt.Sprintf("Replaced %s with %d %s",
			rangeWord(r.StartLine, r.EndLine), r.LinesAdded, lineWord(r.LinesAdded))
	case OpInsert:
		return fmt.Sprintf("Inserted %d %s after line %d",
			r.LinesAdded, lineWord(r.LinesAdded), r.StartLine-1)
	case OpAppend:
		return fmt.Sprintf("Appended %d bytes to %s", r.BytesWritten, r.Path)
	case OpDelete:
		return fmt.Sprintf("Deleted %s", rangeWord(r.StartLine, r.EndLine))
	}
	return ""
}

func rangeWord(start, end int) string {
	if start == end {
		return fmt.Sprintf("line %d", start)
	}
	return fmt.Sprintf("lines %d-%d", start, end)
}

func lineWord(n int) string {
	if n == 1 {
		return "line"
	}
	return "lines"
}
