package main

import "fmt"

// StatusBar generates the text for the bottom status row.
type StatusBar struct{}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// FormatLeft returns the left-aligned portion of the status bar.
// spellErrorCount adds a red-dot indicator when non-zero.
func (s *StatusBar) FormatLeft(lineCount, spellErrorCount int) string {
	// In reverse video mode, background codes affect foreground, so the
	// dot uses a background code to read as red text.
	spellIndicator := ""
	if spellErrorCount > 0 {
		spellIndicator = " \x1b[48;5;9m●\x1b[49m"
	}
	return fmt.Sprintf(" vigo - %d lines%s", lineCount, spellIndicator)
}

// FormatRight returns the right-aligned portion of the status bar: the
// mode label and the cursor position (1-based, as editors display it).
func (s *StatusBar) FormatRight(modeName string, row, col, spellErrorCount int) string {
	errorStr := ""
	if spellErrorCount > 0 {
		errorStr = fmt.Sprintf("%d misspelt  ", spellErrorCount)
	}
	return fmt.Sprintf("%s%d:%d  %s ", errorStr, row+1, col+1, modeName)
}
