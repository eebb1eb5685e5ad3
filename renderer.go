package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Renderer builds a frame buffer and writes it out in one go. It owns the
// vertical scroll offset: which document row is painted on the first
// screen row. The editor itself knows nothing about scrolling.
type Renderer struct {
	buf       strings.Builder
	rowOffset int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text rows, status bar, cursor
// placement. width and height are the terminal dimensions; the last row
// is the status bar.
func (r *Renderer) RenderFrame(ed *Editor, width, height int, statusLeft, statusRight string) string {
	r.buf.Reset()

	textRows := height - 1
	if textRows < 1 {
		textRows = 1
	}

	cursorRow, _ := ed.Cursor()
	r.ensureVisible(cursorRow, textRows)

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")

	// Clear screen and move to top-left.
	r.buf.WriteString("\x1b[2J\x1b[H")

	doc := ed.Document()
	for i := 0; i < textRows; i++ {
		row := r.rowOffset + i
		r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", i+1))
		if row < doc.Count() {
			r.buf.WriteString(truncateToWidth(ed.RowContent(row), width))
		}
	}

	r.renderStatusBar(width, height, statusLeft, statusRight)

	// Position the cursor. Columns past the right edge clamp to the last
	// cell; the buffer itself accepts input regardless.
	screenRow := cursorRow - r.rowOffset + 1
	screenCol := ed.CursorDisplayCol() + 1
	if screenCol > width {
		screenCol = width
	}
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;%dH", screenRow, screenCol))

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

// ensureVisible adjusts the row offset so the cursor's row is on screen.
func (r *Renderer) ensureVisible(cursorRow, textRows int) {
	if cursorRow < r.rowOffset {
		r.rowOffset = cursorRow
	}
	if cursorRow >= r.rowOffset+textRows {
		r.rowOffset = cursorRow - textRows + 1
	}
}

// truncateToWidth cuts a rune sequence so its display width fits maxCols.
// A double-width rune that would straddle the edge is dropped.
func truncateToWidth(runes []rune, maxCols int) string {
	w := 0
	for i, ru := range runes {
		rw := runewidth.RuneWidth(ru)
		if w+rw > maxCols {
			return string(runes[:i])
		}
		w += rw
	}
	return string(runes)
}

func (r *Renderer) renderStatusBar(width, height int, left, right string) {
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", height))
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")

	rightWidth := visibleWidth(right)

	if visibleWidth(left)+rightWidth >= width {
		// Truncate left side if needed.
		maxLeft := width - rightWidth - 1
		if maxLeft < 0 {
			maxLeft = 0
		}
		left = truncateVisible(left, maxLeft)
	}

	gap := width - visibleWidth(left) - rightWidth
	if gap < 0 {
		gap = 0
	}

	r.buf.WriteString(left)
	r.buf.WriteString(strings.Repeat(" ", gap))
	r.buf.WriteString(right)

	// Reset attributes.
	r.buf.WriteString("\x1b[0m")
}

// visibleWidth measures the display width of a string, skipping over ANSI
// escape sequences so color codes in status text do not skew alignment.
func visibleWidth(s string) int {
	w := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// truncateVisible cuts a string down to maxCols of display width, keeping
// escape sequences intact so any styling still closes.
func truncateVisible(s string, maxCols int) string {
	var b strings.Builder
	w := 0
	inEscape := false
	for _, r := range s {
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			b.WriteRune(r)
			continue
		}
		rw := runewidth.RuneWidth(r)
		if w+rw > maxCols {
			continue
		}
		w += rw
		b.WriteRune(r)
	}
	return b.String()
}
