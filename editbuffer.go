package main

import "github.com/mattn/go-runewidth"

// EditBuffer is the insertion-mode split buffer: the line under edit held
// as two rune slices, before and after the cursor. The split point is the
// cursor's character index, so inserting or deleting at the cursor only
// touches the tail of before — no shifting of the rest of the line.
//
// Invariant: before ++ after is the line content at all times.
type EditBuffer struct {
	before []rune
	after  []rune
}

// OpenEditBuffer snapshots a line into a split buffer at the given rune
// index. An index beyond the line length clamps to the end.
func OpenEditBuffer(line *Line, split int) *EditBuffer {
	runes := line.Runes()
	if split < 0 {
		split = 0
	}
	if split > len(runes) {
		split = len(runes)
	}

	eb := &EditBuffer{
		before: make([]rune, split),
		after:  make([]rune, len(runes)-split),
	}
	copy(eb.before, runes[:split])
	copy(eb.after, runes[split:])
	return eb
}

// InsertBeforeCursor appends one rune at the cursor. The cursor implicitly
// moves right: the split point is len(before).
func (eb *EditBuffer) InsertBeforeCursor(r rune) {
	eb.before = append(eb.before, r)
}

// DeleteBeforeCursor removes the rune immediately left of the cursor.
// Returns false when there is nothing left of the cursor; joining with the
// previous line is not this buffer's job.
func (eb *EditBuffer) DeleteBeforeCursor() bool {
	if len(eb.before) == 0 {
		return false
	}
	eb.before = eb.before[:len(eb.before)-1]
	return true
}

// DrainInto commits the buffer back into a line: the line is cleared and
// refilled with before ++ after, and the buffer is emptied.
func (eb *EditBuffer) DrainInto(line *Line) {
	line.Clear()
	for _, r := range eb.before {
		line.Push(r)
	}
	for _, r := range eb.after {
		line.Push(r)
	}
	eb.before = nil
	eb.after = nil
}

// Content returns the full visual content of the line under edit.
func (eb *EditBuffer) Content() []rune {
	content := make([]rune, 0, len(eb.before)+len(eb.after))
	content = append(content, eb.before...)
	content = append(content, eb.after...)
	return content
}

// CursorWidth returns the display column of the cursor: the width of
// before alone, summed per rune like Line.WidthAt so the cursor does not
// jump when the buffer commits. Runes right of the cursor never affect
// cursor placement.
func (eb *EditBuffer) CursorWidth() int {
	w := 0
	for _, r := range eb.before {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Len returns the rune count of before ++ after.
func (eb *EditBuffer) Len() int {
	return len(eb.before) + len(eb.after)
}
