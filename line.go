package main

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Line holds one editable line of text as a rune sequence, together with
// two derived counters kept in sync on every mutation: the rune count and
// the terminal display width (a rune occupies 0, 1 or 2 columns).
//
// The backing storage is private so nothing outside this file can append
// without going through Push, which is what keeps the counters honest.
type Line struct {
	runes      []rune
	width      int  // Total display width in terminal columns.
	hasUnicode bool // Latched once any non-ASCII rune is seen.
}

// NewLine returns an empty line.
func NewLine() *Line {
	return &Line{}
}

// NewLineFromString builds a line from seed content. ASCII-only strings
// take the cheap path: rune count and display width both equal the byte
// length, no width lookups. Anything else is walked once, summing
// per-rune widths — the same model Push and WidthAt use, so a seeded
// line and a pushed line always agree.
func NewLineFromString(s string) *Line {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}

	if ascii {
		return &Line{
			runes: []rune(s),
			width: len(s),
		}
	}

	runes := []rune(s)
	w := 0
	for _, r := range runes {
		w += runewidth.RuneWidth(r)
	}
	return &Line{
		runes:      runes,
		width:      w,
		hasUnicode: true,
	}
}

// Push appends one rune, updating the counters incrementally. ASCII runes
// contribute width 1 without a lookup; everything else is measured and
// latches the non-ASCII flag.
func (l *Line) Push(r rune) {
	l.runes = append(l.runes, r)
	if r < utf8.RuneSelf {
		l.width++
		return
	}
	l.width += runewidth.RuneWidth(r)
	l.hasUnicode = true
}

// Clear resets the line to empty.
func (l *Line) Clear() {
	l.runes = l.runes[:0]
	l.width = 0
	l.hasUnicode = false
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.runes)
}

// Width returns the total display width of the line.
func (l *Line) Width() int {
	return l.width
}

// WidthAt returns the display-column offset of the rune at the given rune
// index, i.e. the width of the first index runes. Fast paths: ASCII-only
// lines map 1:1, and index == Len returns the cached total. Out-of-range
// indexes clamp rather than read out of bounds.
func (l *Line) WidthAt(index int) int {
	if !l.hasUnicode {
		if index > len(l.runes) {
			return len(l.runes)
		}
		return index
	}
	if index >= len(l.runes) {
		return l.width
	}

	w := 0
	for _, r := range l.runes[:index] {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Runes returns the backing rune slice. Callers must not mutate it.
func (l *Line) Runes() []rune {
	return l.runes
}

// String returns the line content as a string.
func (l *Line) String() string {
	return string(l.runes)
}
