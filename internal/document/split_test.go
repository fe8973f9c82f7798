package document

import (
	"reflect"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Line
	}{
		{name: "empty text", text: "", want: nil},
		{name: "single newline", text: "\n", want: []Line{"\n"}},
		{name: "unterminated final line", text: "a\nb\nc", want: []Line{"a\n", "b\n", "c"}},
		{name: "terminated final line", text: "a\nb\nc\n", want: []Line{"a\n", "b\n", "c\n"}},
		{name: "no newline at all", text: "abc", want: []Line{"abc"}},
		{name: "blank lines kept", text: "a\n\n\nb\n", want: []Line{"a\n", "\n", "\n", "b\n"}},
		{name: "crlf kept with its line", text: "a\r\nb", want: []Line{"a\r\n", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitText(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSplitTextJoinRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"\n",
		"one line\n",
		"no terminator",
		"a\nb\nc",
		"a\nb\nc\n",
		"\n\n\n",
		"mixed\r\nendings\nlast",
	}
	for _, text := range texts {
		var joined string
		for _, l := range SplitText(text) {
			joined += string(l)
		}
		if joined != text {
			t.Errorf("expected join to reproduce %q, got %q", text, joined)
		}
	}
}

func TestSplitTextOnlyFinalLineUnterminated(t *testing.T) {
	for _, text := range []string{"a\nb\nc", "a\nb\nc\n", "x", "\n\nq"} {
		lines := SplitText(text)
		for i, l := range lines {
			if i < len(lines)-1 && !l.Terminated() {
				t.Errorf("split of %q left non-final line %d unterminated", text, i+1)
			}
		}
	}
}
