package main

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// Terminal manages raw mode, the alternate screen buffer, and terminal
// dimensions. The editor reads input one raw byte at a time; escape
// sequences are not decoded here — the core only recognizes single-byte
// codes.
type Terminal struct {
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
	readBuf  [1]byte
}

func NewTerminal() (*Terminal, error) {
	t := &Terminal{}

	// Switch to raw mode.
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Enter alternate screen buffer.
	os.Stdout.WriteString("\x1b[?1049h")

	// Hide cursor during setup.
	os.Stdout.WriteString("\x1b[?25l")

	// Query size.
	t.width, t.height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		t.Restore()
		return nil, err
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Restore returns the terminal to its original state. Safe to call more
// than once; App defers it so every exit path restores.
func (t *Terminal) Restore() {
	// Show cursor.
	os.Stdout.WriteString("\x1b[?25h")
	// Leave alternate screen buffer.
	os.Stdout.WriteString("\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), t.oldState)
		t.oldState = nil
	}
	signal.Stop(t.sigwinch)
}

// ReadByte blocks until one raw input byte is available.
func (t *Terminal) ReadByte() (byte, error) {
	for {
		n, err := os.Stdin.Read(t.readBuf[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return t.readBuf[0], nil
		}
	}
}

// Write sends a rendered frame to the terminal.
func (t *Terminal) Write(frame string) error {
	_, err := os.Stdout.WriteString(frame)
	return err
}
