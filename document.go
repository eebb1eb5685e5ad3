package main

// Document is an ordered sequence of lines; the slice order is the visual
// row order. Rows are contiguous and the document is never empty: it is
// born with one empty line and no operation removes the last one.
type Document struct {
	lines []*Line
}

// NewDocument returns a document holding a single empty line.
func NewDocument() *Document {
	return &Document{lines: []*Line{NewLine()}}
}

// NewDocumentFromStrings seeds a document with one line per string. An
// empty seed still produces the single empty line.
func NewDocumentFromStrings(seed []string) *Document {
	if len(seed) == 0 {
		return NewDocument()
	}
	doc := &Document{lines: make([]*Line, 0, len(seed))}
	for _, s := range seed {
		doc.lines = append(doc.lines, NewLineFromString(s))
	}
	return doc
}

// Line returns the line at the given row, or (nil, false) when the row is
// out of range. Callers must treat false as "no such line" and not
// advance.
func (d *Document) Line(row int) (*Line, bool) {
	if row < 0 || row >= len(d.lines) {
		return nil, false
	}
	return d.lines[row], true
}

// Insert places a line at the given row, shifting later rows down. A row
// equal to Count appends; anything else out of range is ignored.
func (d *Document) Insert(row int, line *Line) {
	if row < 0 || row > len(d.lines) {
		return
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[row+1:], d.lines[row:])
	d.lines[row] = line
}

// ClearAndShift empties the line at the given row in place, then rotates
// the suffix [row, Count) left by one: every line below moves up a slot
// and the last slot becomes the now-empty line. The count never shrinks,
// which is also what keeps the document from ever reaching zero lines.
func (d *Document) ClearAndShift(row int) {
	if row < 0 || row >= len(d.lines) {
		return
	}
	cleared := d.lines[row]
	cleared.Clear()
	copy(d.lines[row:], d.lines[row+1:])
	d.lines[len(d.lines)-1] = cleared
}

// Count returns the number of rows.
func (d *Document) Count() int {
	return len(d.lines)
}

// Rows returns the lines in row order for rendering. Callers must not
// mutate the slice.
func (d *Document) Rows() []*Line {
	return d.lines
}
