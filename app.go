package main

import (
	"time"
)

// App wires the editor core to its collaborators and owns the run loop:
// one input byte is read, fully dispatched, and a redraw performed before
// the next read. Single-threaded, no background work.
type App struct {
	editor    *Editor
	terminal  *Terminal
	renderer  *Renderer
	statusBar *StatusBar

	spell        *SpellChecker
	spellErrors  []SpellError
	spellPending bool
	lastEdit     time.Time
}

func NewApp() *App {
	return &App{
		editor:    NewEditor(NewDocument()),
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(),
	}
}

func (a *App) Run() error {
	sc, err := NewSpellChecker()
	if err != nil {
		return err
	}
	a.spell = sc

	t, err := NewTerminal()
	if err != nil {
		return err
	}
	a.terminal = t
	defer t.Restore()

	debugf("started: %dx%d", t.width, t.height)

	if err := a.render(); err != nil {
		return err
	}

	for {
		// Check for resize signal (non-blocking).
		select {
		case <-t.SigwinchChan():
			t.Resize()
			if err := a.render(); err != nil {
				return err
			}
			continue
		default:
		}

		b, err := t.ReadByte()
		if err != nil {
			return err
		}

		if quit := a.editor.HandleKey(b, t.height-1); quit {
			debugf("quit requested")
			return nil
		}
		a.scheduleSpellCheck()
		a.performSpellCheck()

		if err := a.render(); err != nil {
			return err
		}
	}
}

// scheduleSpellCheck marks that a check should run once typing pauses.
func (a *App) scheduleSpellCheck() {
	a.spellPending = true
	a.lastEdit = time.Now()
}

// performSpellCheck re-checks the whole document if a check is pending
// and enough time has elapsed since the last keystroke. Debouncing keeps
// the check out of the per-key dispatch cost.
func (a *App) performSpellCheck() {
	if !a.spellPending {
		return
	}
	if time.Since(a.lastEdit) < 300*time.Millisecond {
		return
	}
	a.spellPending = false
	a.spellErrors = a.spell.CheckDocument(a.editor.Document())
}

func (a *App) render() error {
	row, col := a.editor.Cursor()
	left := a.statusBar.FormatLeft(a.editor.Document().Count(), len(a.spellErrors))
	right := a.statusBar.FormatRight(a.editor.ModeName(), row, col, len(a.spellErrors))
	frame := a.renderer.RenderFrame(a.editor, a.terminal.width, a.terminal.height, left, right)
	return a.terminal.Write(frame)
}
