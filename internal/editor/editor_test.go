package editor

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/fatih/color"

	"goline/internal/document"
	"goline/internal/span"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newEditor(t *testing.T, path, content string) (*Editor, *document.MemStore, *bytes.Buffer) {
	t.Helper()
	store := document.NewMemStore()
	if err := store.WriteFile(path, []byte(content)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var out bytes.Buffer
	return New(store, &out), store, &out
}

func fileContent(t *testing.T, store document.Store, path string) string {
	t.Helper()
	data, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	return string(data)
}

func TestShowWholeDocument(t *testing.T) {
	ed, store, out := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	rep, err := ed.Apply("plan.md", Show{})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	want := "   1: one\n   2: two\n   3: three\n"
	if out.String() != want {
		t.Errorf("expected output %q, got %q", want, out.String())
	}
	if rep.StartLine != 1 || rep.EndLine != 3 {
		t.Errorf("expected range 1-3, got %d-%d", rep.StartLine, rep.EndLine)
	}
	if len(rep.Lines) != 3 || rep.Lines[0] != "one\n" {
		t.Errorf("expected raw lines in report, got %q", rep.Lines)
	}
	// Show must never write.
	if got := fileContent(t, store, "plan.md"); got != "one\ntwo\nthree\n" {
		t.Errorf("show modified the file: %q", got)
	}
}

func TestShowTwiceIsIdentical(t *testing.T) {
	ed, store, out := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	if _, err := ed.Apply("plan.md", Show{Start: 1, End: 3}); err != nil {
		t.Fatalf("first show failed: %v", err)
	}
	first := out.String()
	out.Reset()
	if _, err := ed.Apply("plan.md", Show{Start: 1, End: 3}); err != nil {
		t.Fatalf("second show failed: %v", err)
	}
	if out.String() != first {
		t.Errorf("second show output differs: %q vs %q", out.String(), first)
	}
	if got := fileContent(t, store, "plan.md"); got != "one\ntwo\nthree\n" {
		t.Errorf("show modified the file: %q", got)
	}
}

func TestShowWindow(t *testing.T) {
	ed, _, out := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	if _, err := ed.Apply("plan.md", Show{Start: 2, End: 2}); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out.String() != "   2: two\n" {
		t.Errorf("expected %q, got %q", "   2: two\n", out.String())
	}
}

func TestShowClampsEndPastDocument(t *testing.T) {
	ed, _, out := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	rep, err := ed.Apply("plan.md", Show{Start: 2, End: 99})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out.String() != "   2: two\n   3: three\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if rep.EndLine != 3 {
		t.Errorf("expected clamped end 3, got %d", rep.EndLine)
	}
}

func TestShowStartPastDocumentIsEmpty(t *testing.T) {
	ed, _, out := newEditor(t, "plan.md", "one\ntwo\n")
	if _, err := ed.Apply("plan.md", Show{Start: 9, End: 12}); err != nil {
		t.Fatalf("expected empty output, got error %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestShowUnterminatedFinalLine(t *testing.T) {
	ed, store, out := newEditor(t, "plan.md", "a\nb")
	if _, err := ed.Apply("plan.md", Show{}); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	// The cosmetic trailing newline is display-only.
	if out.String() != "   1: a\n   2: b\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if got := fileContent(t, store, "plan.md"); got != "a\nb" {
		t.Errorf("show modified the file: %q", got)
	}
}

func TestShowEmptyDocument(t *testing.T) {
	ed, _, out := newEditor(t, "plan.md", "")
	if _, err := ed.Apply("plan.md", Show{}); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output for empty document, got %q", out.String())
	}
}

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{max: 1, want: 4},
		{max: 9999, want: 4},
		{max: 10000, want: 5},
		{max: 123456, want: 6},
	}
	for _, tt := range tests {
		if got := gutterWidth(tt.max); got != tt.want {
			t.Errorf("gutterWidth(%d): expected %d, got %d", tt.max, tt.want, got)
		}
	}
}

func TestReplaceLine(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	rep, err := ed.Apply("plan.md", Replace{Range: span.New(2, 2), Text: "TWO\n"})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "one\nTWO\nthree\n" {
		t.Errorf("expected %q, got %q", "one\nTWO\nthree\n", got)
	}
	if rep.String() != "Replaced line 2 with 1 line" {
		t.Errorf("unexpected report %q", rep.String())
	}
}

func TestReplaceChangesLineCount(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "l1\nl2\nl3\nl4\nl5\nl6\n")
	rep, err := ed.Apply("plan.md", Replace{Range: span.New(2, 4), Text: "a\nb\n"})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if rep.LinesRemoved != 3 || rep.LinesAdded != 2 {
		t.Errorf("expected 3 removed and 2 added, got %d and %d", rep.LinesRemoved, rep.LinesAdded)
	}
	want := "l1\na\nb\nl5\nl6\n"
	if got := fileContent(t, store, "plan.md"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReplaceWithEmptyTextDeletes(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\nc\n")
	rep, err := ed.Apply("plan.md", Replace{Range: span.New(2, 2), Text: ""})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if rep.LinesAdded != 0 {
		t.Errorf("expected 0 lines added, got %d", rep.LinesAdded)
	}
	if got := fileContent(t, store, "plan.md"); got != "a\nc\n" {
		t.Errorf("expected %q, got %q", "a\nc\n", got)
	}
}

func TestReplaceKeepsFinalLineUnterminated(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\nc\n")
	if _, err := ed.Apply("plan.md", Replace{Range: span.New(3, 3), Text: "x"}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "a\nb\nx" {
		t.Errorf("expected unterminated final line in %q", got)
	}
}

func TestReplaceRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name string
		r    span.Range
	}{
		{name: "end before start", r: span.New(5, 2)},
		{name: "end past document", r: span.New(2, 9)},
		{name: "start past document", r: span.New(7, 8)},
		{name: "zero start", r: span.New(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, store, _ := newEditor(t, "plan.md", "a\nb\nc\n")
			_, err := ed.Apply("plan.md", Replace{Range: tt.r, Text: "x\n"})
			if !errors.Is(err, span.ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if got := fileContent(t, store, "plan.md"); got != "a\nb\nc\n" {
				t.Errorf("failed edit modified the file: %q", got)
			}
		})
	}
}

func TestInsertAtTop(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\n")
	rep, err := ed.Apply("plan.md", Insert{After: 0, Text: "first\n"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "first\na\nb\n" {
		t.Errorf("expected %q, got %q", "first\na\nb\n", got)
	}
	if rep.String() != "Inserted 1 line after line 0" {
		t.Errorf("unexpected report %q", rep.String())
	}
}

func TestInsertAfterLastLine(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\n")
	if _, err := ed.Apply("plan.md", Insert{After: 2, Text: "c\nd\n"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "a\nb\nc\nd\n" {
		t.Errorf("expected %q, got %q", "a\nb\nc\nd\n", got)
	}
}

func TestInsertIntoEmptyDocument(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "")
	if _, err := ed.Apply("plan.md", Insert{After: 0, Text: "only\n"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "only\n" {
		t.Errorf("expected %q, got %q", "only\n", got)
	}
}

func TestInsertRejectsAnchorPastEnd(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\n")
	_, err := ed.Apply("plan.md", Insert{After: 3, Text: "x\n"})
	if !errors.Is(err, span.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "a\nb\n" {
		t.Errorf("failed insert modified the file: %q", got)
	}
}

func TestAppendVerbatim(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb")
	rep, err := ed.Apply("plan.md", Append{Text: "tail"})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	// No splitting and no added newline: the unterminated final line grows.
	if got := fileContent(t, store, "plan.md"); got != "a\nbtail" {
		t.Errorf("expected %q, got %q", "a\nbtail", got)
	}
	if rep.BytesWritten != 4 {
		t.Errorf("expected 4 bytes written, got %d", rep.BytesWritten)
	}
}

func TestAppendCreatesMissingFile(t *testing.T) {
	store := document.NewMemStore()
	ed := New(store, &bytes.Buffer{})
	rep, err := ed.Apply("fresh.md", Append{Text: "hello\n"})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if got := fileContent(t, store, "fresh.md"); got != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", got)
	}
	if rep.String() != "Appended 6 bytes to fresh.md" {
		t.Errorf("unexpected report %q", rep.String())
	}
}

func TestDeleteLine(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "one\ntwo\nthree\n")
	rep, err := ed.Apply("plan.md", Delete{Range: span.New(1, 1)})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "two\nthree\n" {
		t.Errorf("expected %q, got %q", "two\nthree\n", got)
	}
	if rep.String() != "Deleted line 1" {
		t.Errorf("unexpected report %q", rep.String())
	}
}

func TestDeleteWholeDocument(t *testing.T) {
	ed, store, _ := newEditor(t, "plan.md", "a\nb\nc\n")
	if _, err := ed.Apply("plan.md", Delete{Range: span.New(1, 3)}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "" {
		t.Errorf("expected empty file, got %q", got)
	}
}

func TestMutatingOpsRequireExistingFile(t *testing.T) {
	store := document.NewMemStore()
	ed := New(store, &bytes.Buffer{})
	cmds := []Command{
		Show{},
		Replace{Range: span.New(1, 1), Text: "x\n"},
		Insert{After: 0, Text: "x\n"},
		Delete{Range: span.New(1, 1)},
	}
	for _, cmd := range cmds {
		if _, err := ed.Apply("absent.md", cmd); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%q on missing file: expected fs.ErrNotExist, got %v", cmd.op(), err)
		}
	}
}

func TestEditScenario(t *testing.T) {
	ed, store, out := newEditor(t, "plan.md", "one\ntwo\nthree\n")

	if _, err := ed.Apply("plan.md", Show{}); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out.String() != "   1: one\n   2: two\n   3: three\n" {
		t.Fatalf("unexpected show output %q", out.String())
	}

	if _, err := ed.Apply("plan.md", Replace{Range: span.New(2, 2), Text: "TWO\n"}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "one\nTWO\nthree\n" {
		t.Fatalf("after replace: %q", got)
	}

	if _, err := ed.Apply("plan.md", Delete{Range: span.New(1, 1)}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := fileContent(t, store, "plan.md"); got != "TWO\nthree\n" {
		t.Errorf("after delete: %q", got)
	}
}
