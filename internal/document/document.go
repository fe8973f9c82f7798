package document

import (
	"strings"

	"goline/internal/span"
)

// Document is one file held as an ordered line sequence.
type Document struct {
	path  string
	lines []Line
}

// New builds a document from already-split lines.
func New(path string, lines []Line) *Document {
	return &Document{path: path, lines: lines}
}

// Load reads path through store and splits it into lines.
func Load(store Store, path string) (*Document, error) {
	data, err := store.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{path: path, lines: SplitText(string(data))}, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Len returns the number of lines in the document.
func (d *Document) Len() int { return len(d.lines) }

// Lines returns the document's lines. Callers must treat the slice as
// read-only; edits go through Replace, Insert, and Delete.
func (d *Document) Lines() []Line { return d.lines }

// Slice returns the lines covered by r. The range must lie inside the
// document; an empty range yields nil.
func (d *Document) Slice(r span.Range) []Line {
	if r.IsEmpty() {
		return nil
	}
	return d.lines[r.LowIndex():r.HighIndex()]
}

// Replace substitutes the lines covered by r with repl and returns the
// number of lines removed. The range must already be validated against the
// document. Untouched lines are carried over byte-for-byte.
func (d *Document) Replace(r span.Range, repl []Line) int {
	removed := r.Len()
	out := make([]Line, 0, len(d.lines)-removed+len(repl))
	out = append(out, d.lines[:r.LowIndex()]...)
	out = append(out, repl...)
	out = append(out, d.lines[r.HighIndex():]...)
	d.lines = out
	return removed
}

// Insert places newLines after line number after, where 0 inserts before
// the first line and Len() inserts after the last. The anchor must already
// be validated against the document.
func (d *Document) Insert(after int, newLines []Line) {
	out := make([]Line, 0, len(d.lines)+len(newLines))
	out = append(out, d.lines[:after]...)
	out = append(out, newLines...)
	out = append(out, d.lines[after:]...)
	d.lines = out
}

// Delete removes the lines covered by r and returns how many were removed.
func (d *Document) Delete(r span.Range) int {
	return d.Replace(r, nil)
}

// Content reassembles the document's exact bytes.
func (d *Document) Content() []byte {
	var b strings.Builder
	n := 0
	for _, l := range d.lines {
		n += len(l)
	}
	b.Grow(n)
	for _, l := range d.lines {
		b.WriteString(string(l))
	}
	return []byte(b.String())
}

// Save writes the document's current content back through store.
func (d *Document) Save(store Store) error {
	return store.WriteFile(d.path, d.Content())
}
