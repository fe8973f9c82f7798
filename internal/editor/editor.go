// Package editor applies positional edit commands to documents. Every
// mutating command runs the same pipeline: load the document, validate the
// target against its current length, splice the lines, persist the result.
package editor

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"goline/internal/document"
	"goline/internal/span"
	"goline/pkg/report"
)

// Line numbers dim when color is on so they stand apart from content.
// Content bytes are never styled.
var gutterColor = color.New(color.FgHiBlack)

// Editor runs commands against files held in a Store. Show output goes to
// out; edits write back through the store.
type Editor struct {
	store document.Store
	out   io.Writer
}

// New returns an editor over store whose show output goes to out.
func New(store document.Store, out io.Writer) *Editor {
	return &Editor{store: store, out: out}
}

// Apply runs one command against the file at path.
func (e *Editor) Apply(path string, cmd Command) (*report.Report, error) {
	switch c := cmd.(type) {
	case Show:
		return e.show(path, c)
	case Replace:
		return e.replace(path, c)
	case Insert:
		return e.insert(path, c)
	case Append:
		return e.appendText(path, c)
	case Delete:
		return e.delete(path, c)
	default:
		return nil, fmt.Errorf("no handler for %q command", cmd.op())
	}
}

func (e *Editor) show(path string, c Show) (*report.Report, error) {
	doc, err := document.Load(e.store, path)
	if err != nil {
		return nil, err
	}
	start, end := c.Start, c.End
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = doc.Len()
	}
	if start < 1 {
		return nil, &span.RangeError{Range: span.New(start, end), DocLen: doc.Len(), Reason: "line numbers start at 1"}
	}
	r := span.New(start, end).ClampTo(doc.Len())
	lines := doc.Slice(r)

	width := gutterWidth(r.End)
	for i, line := range lines {
		fmt.Fprintf(e.out, "%s %s", gutterColor.Sprintf("%*d:", width, r.Start+i), line)
		if !line.Terminated() {
			// Cosmetic newline so the prompt lands on a fresh line. The
			// file itself is untouched.
			fmt.Fprintln(e.out)
		}
	}

	return &report.Report{
		Op:        report.OpShow,
		Path:      path,
		StartLine: r.Start,
		EndLine:   r.End,
		Lines:     rawLines(lines),
	}, nil
}

func (e *Editor) replace(path string, c Replace) (*report.Report, error) {
	doc, err := document.Load(e.store, path)
	if err != nil {
		return nil, err
	}
	if err := c.Range.Validate(doc.Len()); err != nil {
		return nil, err
	}
	repl := document.SplitText(c.Text)
	removed := doc.Replace(c.Range, repl)
	if err := doc.Save(e.store); err != nil {
		return nil, err
	}
	return &report.Report{
		Op:           report.OpReplace,
		Path:         path,
		StartLine:    c.Range.Start,
		EndLine:      c.Range.End,
		LinesRemoved: removed,
		LinesAdded:   len(repl),
	}, nil
}

func (e *Editor) insert(path string, c Insert) (*report.Report, error) {
	doc, err := document.Load(e.store, path)
	if err != nil {
		return nil, err
	}
	if err := span.ValidateInsertPoint(c.After, doc.Len()); err != nil {
		return nil, err
	}
	added := document.SplitText(c.Text)
	doc.Insert(c.After, added)
	if err := doc.Save(e.store); err != nil {
		return nil, err
	}
	return &report.Report{
		Op:         report.OpInsert,
		Path:       path,
		StartLine:  c.After + 1,
		EndLine:    c.After + len(added),
		LinesAdded: len(added),
	}, nil
}

// appendText goes straight through the store: the document is never split,
// so an unterminated final line simply grows.
func (e *Editor) appendText(path string, c Append) (*report.Report, error) {
	n, err := e.store.AppendFile(path, []byte(c.Text))
	if err != nil {
		return nil, err
	}
	return &report.Report{
		Op:           report.OpAppend,
		Path:         path,
		BytesWritten: n,
	}, nil
}

func (e *Editor) delete(path string, c Delete) (*report.Report, error) {
	doc, err := document.Load(e.store, path)
	if err != nil {
		return nil, err
	}
	if err := c.Range.Validate(doc.Len()); err != nil {
		return nil, err
	}
	removed := doc.Delete(c.Range)
	if err := doc.Save(e.store); err != nil {
		return nil, err
	}
	return &report.Report{
		Op:           report.OpDelete,
		Path:         path,
		StartLine:    c.Range.Start,
		EndLine:      c.Range.End,
		LinesRemoved: removed,
	}, nil
}

// gutterWidth sizes the line-number column: wide enough for the largest
// ordinal shown, never narrower than four columns.
func gutterWidth(maxOrdinal int) int {
	if w := len(strconv.Itoa(maxOrdinal)); w > 4 {
		return w
	}
	return 4
}

func rawLines(lines []document.Line) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l)
	}
	return out
}
