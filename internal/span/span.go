// Package span defines 1-based inclusive line ranges and the rules for
// applying them to documents. All translation between the 1-based ordinals
// users type and the 0-based slice indexes the rest of the code uses
// happens here, through LowIndex and HighIndex.
package span

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrInvalidRange is the base error for every range, line number, and
// insertion point the editor refuses to apply.
var ErrInvalidRange = errors.New("invalid line range")

// RangeError reports a range that cannot be applied to a document of
// DocLen lines. It unwraps to ErrInvalidRange.
type RangeError struct {
	Range  Range
	DocLen int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// Range addresses the lines Start through End of a document, counted from 1
// and inclusive at both ends. The zero value is not a usable range.
type Range struct {
	Start int
	End   int
}

// New returns the range covering lines start through end.
func New(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of lines the range covers.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// IsEmpty reports whether the range covers no lines.
func (r Range) IsEmpty() bool { return r.End < r.Start }

// LowIndex returns the 0-based index of the first covered line.
func (r Range) LowIndex() int { return r.Start - 1 }

// HighIndex returns the 0-based index one past the last covered line, so
// that lines[r.LowIndex():r.HighIndex()] is exactly the covered run.
func (r Range) HighIndex() int { return r.End }

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("line %d", r.Start)
	}
	return fmt.Sprintf("lines %d-%d", r.Start, r.End)
}

// ClampTo bounds the range to a document of docLen lines. Read-only views
// use this policy: an end past the last line means "through the end", and
// a start past the last line leaves an empty range.
func (r Range) ClampTo(docLen int) Range {
	if r.End > docLen {
		r.End = docLen
	}
	return r
}

// Validate checks the range against a document of docLen lines under the
// strict policy used by destructive edits: every covered line must exist.
func (r Range) Validate(docLen int) error {
	switch {
	case r.Start < 1:
		return &RangeError{Range: r, DocLen: docLen, Reason: "line numbers start at 1"}
	case r.End < r.Start:
		return &RangeError{Range: r, DocLen: docLen, Reason: "end is before start"}
	case r.End > docLen:
		return &RangeError{Range: r, DocLen: docLen, Reason: fmt.Sprintf("document has only %d %s", docLen, lineWord(docLen))}
	}
	return nil
}

// ValidateInsertPoint checks an insertion anchor against a document of
// docLen lines. Valid anchors run from 0 (insert before the first line)
// through docLen (insert after the last line).
func ValidateInsertPoint(after, docLen int) error {
	if after < 0 || after > docLen {
		return &RangeError{
			Range:  New(after, after),
			DocLen: docLen,
			Reason: fmt.Sprintf("insertion point must be between 0 and %d", docLen),
		}
	}
	return nil
}

// Parse builds a Range from two command-line arguments.
func Parse(startArg, endArg string) (Range, error) {
	start, err := ParseLineNumber(startArg)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseLineNumber(endArg)
	if err != nil {
		return Range{}, err
	}
	return New(start, end), nil
}

// ParseLineNumber converts a command-line argument into a 1-based line
// ordinal.
func ParseLineNumber(arg string) (int, error) {
	n, err := parseInt(arg)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d (line numbers start at 1)", ErrInvalidRange, n)
	}
	return n, nil
}

// ParseInsertPoint converts a command-line argument into an insertion
// anchor, where 0 means "before the first line".
func ParseInsertPoint(arg string) (int, error) {
	n, err := parseInt(arg)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d (insertion point may not be negative)", ErrInvalidRange, n)
	}
	return n, nil
}

func parseInt(arg string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidRange, arg)
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit a line number", ErrInvalidRange, arg)
	}
	return n, nil
}

func lineWord(n int) string {
	if n == 1 {
		return "line"
	}
	return "lines"
}
