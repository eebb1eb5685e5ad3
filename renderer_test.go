package main

import (
	"fmt"
	"strings"
	"testing"
)

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		in   string
		cols int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語", 6, "日本語"},
		{"日本語", 4, "日本"},
		// A wide rune straddling the edge is dropped, not halved.
		{"日本語", 5, "日本"},
		{"a日b", 2, "a"},
	}
	for _, tt := range tests {
		if got := truncateToWidth([]rune(tt.in), tt.cols); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.in, tt.cols, got, tt.want)
		}
	}
}

func TestEnsureVisible(t *testing.T) {
	r := NewRenderer()
	r.ensureVisible(0, 10)
	if r.rowOffset != 0 {
		t.Errorf("rowOffset = %d, want 0", r.rowOffset)
	}
	r.ensureVisible(12, 10)
	if r.rowOffset != 3 {
		t.Errorf("cursor below window: rowOffset = %d, want 3", r.rowOffset)
	}
	r.ensureVisible(1, 10)
	if r.rowOffset != 1 {
		t.Errorf("cursor above window: rowOffset = %d, want 1", r.rowOffset)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"日本", 4},
		{"\x1b[48;5;9m●\x1b[49m", 1},
		{"a\x1b[7mb\x1b[0mc", 3},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.in); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncateVisible(t *testing.T) {
	got := truncateVisible("a\x1b[7mbcd\x1b[0m", 2)
	if visibleWidth(got) != 2 {
		t.Errorf("truncated width = %d, want 2", visibleWidth(got))
	}
	// Escape sequences survive truncation so styling still closes.
	if !strings.Contains(got, "\x1b[0m") {
		t.Errorf("reset sequence lost: %q", got)
	}
}

func TestStatusBarAlignmentIgnoresEscapes(t *testing.T) {
	r := NewRenderer()
	s := NewStatusBar()
	// Two misspellings: the left segment carries the colored dot.
	left := s.FormatLeft(3, 2)
	right := s.FormatRight("NAV", 0, 0, 2)
	r.buf.Reset()
	r.renderStatusBar(40, 24, left, right)

	out := r.buf.String()
	// Strip the positioning prefix and reverse-video/reset wrappers, then
	// the whole row must span exactly the terminal width.
	row := strings.TrimPrefix(out, "\x1b[24;1H")
	row = strings.TrimPrefix(row, "\x1b[7m")
	row = strings.TrimSuffix(row, "\x1b[0m")
	if got := visibleWidth(row); got != 40 {
		t.Errorf("status row spans %d columns, want 40", got)
	}
}

func TestRenderFrameContents(t *testing.T) {
	e := newTestEditor("hello", "world")
	r := NewRenderer()
	frame := r.RenderFrame(e, 80, 24, " left", "right ")

	for _, want := range []string{"hello", "world", " left", "right "} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	// Cursor at origin: 1;1.
	if !strings.Contains(frame, "\x1b[1;1H") {
		t.Error("frame should position the cursor at 1;1")
	}
}

func TestRenderFrameCursorUsesDisplayWidth(t *testing.T) {
	e := newTestEditor("日本")
	feed(e, "l") // col 1, display col 2
	r := NewRenderer()
	frame := r.RenderFrame(e, 80, 24, "", "")
	if !strings.Contains(frame, "\x1b[1;3H") {
		t.Error("cursor should land on terminal column 3 after one wide rune")
	}
}

func TestRenderFrameClampsCursorAtRightEdge(t *testing.T) {
	e := newTestEditor(strings.Repeat("x", 30))
	for i := 0; i < 30; i++ {
		e.HandleKey('l', 24)
	}
	r := NewRenderer()
	frame := r.RenderFrame(e, 10, 24, "", "")
	if !strings.Contains(frame, "\x1b[1;10H") {
		t.Error("cursor past the right edge should clamp to the last cell")
	}
	if strings.Contains(frame, strings.Repeat("x", 11)) {
		t.Error("painted line should be truncated to the viewport width")
	}
}

func TestRenderFrameShowsEditBuffer(t *testing.T) {
	e := newTestEditor("abc")
	feed(e, "li")
	feed(e, "Z")
	r := NewRenderer()
	frame := r.RenderFrame(e, 80, 24, "", "")
	if !strings.Contains(frame, "aZbc") {
		t.Error("the row under edit should render the buffer content")
	}
}

func TestRenderFrameScrollsToCursor(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	e := newTestEditor(lines...)
	for i := 0; i < 30; i++ {
		e.HandleKey('j', 40)
	}
	r := NewRenderer()
	frame := r.RenderFrame(e, 80, 11, "", "") // 10 text rows
	if r.rowOffset != 21 {
		t.Errorf("rowOffset = %d, want 21", r.rowOffset)
	}
	if !strings.Contains(frame, "line30") {
		t.Error("cursor row should be painted")
	}
	if strings.Contains(frame, "line5\x1b") {
		t.Error("rows above the window should not be painted")
	}
}
