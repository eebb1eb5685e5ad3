package main

// Input bytes the editor recognizes beyond the printable range.
const (
	keyEscape    = 27
	keyBackspace = 127
)

// mode is the editor's modal state, as a tagged union: the insertion
// variant owns the live EditBuffer, so "navigation with a leftover edit
// buffer" cannot be represented. Every dispatch site switches over the
// variants exhaustively.
type mode interface {
	modeName() string
}

type navigation struct{}

func (navigation) modeName() string { return "NAV" }

type insertion struct {
	buf *EditBuffer
}

func (insertion) modeName() string { return "INSERT" }

// Editor composes the document, the cursor and the current mode, and
// translates raw input bytes into mutations. It performs no I/O; the App
// feeds it bytes and the Renderer reads it back.
//
// col is a character index into the current line, never a display column;
// targetCol remembers the desired column when moving across lines of
// different lengths (sticky column).
type Editor struct {
	doc       *Document
	row       int
	col       int
	targetCol int
	mode      mode
}

// NewEditor returns an editor in navigation mode at the origin.
func NewEditor(doc *Document) *Editor {
	return &Editor{doc: doc, mode: navigation{}}
}

// HandleKey dispatches one raw input byte through the state machine.
// rows is the viewport height in text rows; it bounds downward movement.
// The returned bool signals a quit request — quitting is a side channel,
// not an editor state.
func (e *Editor) HandleKey(b byte, rows int) bool {
	switch m := e.mode.(type) {
	case navigation:
		return e.handleNavigationKey(b, rows)
	case insertion:
		e.handleInsertionKey(b, m.buf)
		return false
	}
	return false
}

// handleNavigationKey mutates the cursor and document directly, or
// transitions to insertion mode. Boundary violations are swallowed:
// navigation at an edge clamps, it never errors.
func (e *Editor) handleNavigationKey(b byte, rows int) bool {
	switch b {
	case 'h':
		if e.col > 0 {
			e.col--
			e.targetCol = e.col
		}
	case 'l':
		if line, ok := e.doc.Line(e.row); ok && e.col < line.Len() {
			e.col++
			e.targetCol = e.col
		}
	case 'j':
		if e.row < rows-1 && e.row < e.doc.Count()-1 {
			e.row++
			e.snapToTargetCol()
		}
	case 'k':
		if e.row > 0 {
			e.row--
			e.snapToTargetCol()
		}
	case 'd':
		e.doc.ClearAndShift(e.row)
		if line, ok := e.doc.Line(e.row); ok && e.col > line.Len() {
			e.col = line.Len()
		}
	case 'i':
		e.enterInsertion()
	case 'o':
		e.row++
		e.doc.Insert(e.row, NewLine())
		e.col = 0
		e.enterInsertion()
	case 'q':
		return true
	default:
		debugf("navigation: ignoring byte %d", b)
	}
	return false
}

// handleInsertionKey edits the split buffer. Insertion never changes the
// row; one session edits exactly one line.
func (e *Editor) handleInsertionKey(b byte, buf *EditBuffer) {
	switch {
	case b == keyEscape:
		if line, ok := e.doc.Line(e.row); ok {
			buf.DrainInto(line)
		}
		e.targetCol = e.col
		e.mode = navigation{}
	case b == keyBackspace:
		if e.col > 0 && buf.DeleteBeforeCursor() {
			e.col--
		}
	case b >= ' ' && b < keyBackspace:
		buf.InsertBeforeCursor(rune(b))
		e.col++
	default:
		debugf("insertion: ignoring byte %d", b)
	}
}

// enterInsertion snapshots the current line into a split buffer at the
// cursor. From here until ESC the buffer, not the document row, is the
// authoritative content of this line.
func (e *Editor) enterInsertion() {
	line, ok := e.doc.Line(e.row)
	if !ok {
		return
	}
	e.mode = insertion{buf: OpenEditBuffer(line, e.col)}
}

// snapToTargetCol re-derives col after a vertical move: the remembered
// target column, clamped to the new line's length.
func (e *Editor) snapToTargetCol() {
	line, ok := e.doc.Line(e.row)
	if !ok {
		return
	}
	e.col = min(e.targetCol, line.Len())
}

// Cursor returns the cursor's row and character-index column.
func (e *Editor) Cursor() (row, col int) {
	return e.row, e.col
}

// ModeName returns the label of the current mode for the status bar.
func (e *Editor) ModeName() string {
	return e.mode.modeName()
}

// Document returns the underlying document for rendering.
func (e *Editor) Document() *Document {
	return e.doc
}

// RowContent returns the effective visual content of a row: the split
// buffer's content for the row under edit, the document line otherwise.
func (e *Editor) RowContent(row int) []rune {
	if m, ok := e.mode.(insertion); ok && row == e.row {
		return m.buf.Content()
	}
	line, ok := e.doc.Line(row)
	if !ok {
		return nil
	}
	return line.Runes()
}

// CursorDisplayCol returns the display column of the cursor within its
// row: in insertion mode the width of the buffer's before part, otherwise
// the line's width up to the cursor index.
func (e *Editor) CursorDisplayCol() int {
	if m, ok := e.mode.(insertion); ok {
		return m.buf.CursorWidth()
	}
	line, ok := e.doc.Line(e.row)
	if !ok {
		return 0
	}
	return line.WidthAt(e.col)
}
