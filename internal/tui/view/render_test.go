package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderPlaceholderWithoutSize(t *testing.T) {
	if got := Render(ViewState{EmptyPlaceholder: "Waiting"}); got != "Waiting" {
		t.Errorf("Render() = %q, want Waiting", got)
	}
	if got := Render(ViewState{Width: 80}); got != "Loading..." {
		t.Errorf("Render() = %q, want Loading...", got)
	}
}

func TestRenderSectionsInOrder(t *testing.T) {
	out := ansi.Strip(Render(ViewState{
		Width:    40,
		Height:   12,
		Header:   "HEADER",
		Source:   "SOURCE",
		Target:   "TARGET",
		Meridiem: "AMPM",
		Examples: "EXAMPLES",
		Help:     "HELP",
	}))

	last := -1
	for _, part := range []string{"HEADER", "SOURCE", "TARGET", "AMPM", "EXAMPLES", "HELP"} {
		idx := strings.Index(out, part)
		if idx < 0 {
			t.Fatalf("missing %q in %q", part, out)
		}
		if idx < last {
			t.Errorf("%q rendered out of order", part)
		}
		last = idx
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Errorf("got %d lines, want 12", len(lines))
	}
}

func TestRenderSkipsEmptyMeridiem(t *testing.T) {
	out := ansi.Strip(Render(ViewState{
		Width:  40,
		Height: 10,
		Header: "H",
		Source: "S",
		Target: "T",
		Help:   "?",
	}))
	if strings.Count(out, "\n") != 9 {
		t.Errorf("unexpected line count in %q", out)
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		height  int
		want    []string
	}{
		{name: "pads width and height", content: "ab\nc", width: 3, height: 3, want: []string{"ab ", "c  ", "   "}},
		{name: "truncates wide lines", content: "abcdef", width: 4, height: 1, want: []string{"abcd"}},
		{name: "drops extra lines", content: "a\nb\nc", width: 1, height: 2, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(PadLinesWithBackground(tt.content, tt.width, tt.height, lipgloss.Color("")))
			if want := strings.Join(tt.want, "\n"); got != want {
				t.Errorf("PadLinesWithBackground() = %q, want %q", got, want)
			}
		})
	}
}

func TestPadLinesWithBackgroundZeroSize(t *testing.T) {
	if got := PadLinesWithBackground("x", 0, 5, lipgloss.Color("")); got != "x" {
		t.Errorf("got %q, want content unchanged", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"14:30", 10, "14:30"},
		{"Format: HH:MM or HH", 8, "Format:…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
