// Package outline maps markdown headings to the 1-based lines they start
// on, so edits can be aimed at a section instead of a hand-counted line
// number.
package outline

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading and the line it lives on.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Line  int    `json:"line"`
}

// Scan parses source as markdown and returns its headings in document
// order. Headings with no text are skipped.
func Scan(source []byte) []Heading {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	offsets := buildLineOffsets(source)

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Title: nodeText(h, source),
			Line:  lineOfOffset(offsets, h.Lines().At(0).Start),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// nodeText concatenates the plain text under n, dropping any markup.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// buildLineOffsets returns the byte offset of the start of every line.
func buildLineOffsets(source []byte) []int {
	offsets := []int{0}
	for i, b := range source {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineOfOffset returns the 1-based line containing the byte at off.
func lineOfOffset(offsets []int, off int) int {
	return sort.Search(len(offsets), func(i int) bool { return offsets[i] > off })
}
