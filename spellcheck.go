package main

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"
)

//go:embed dictionaries/words.txt
var dictionaryData string

// SpellError represents a misspelled word location in the document.
type SpellError struct {
	Row      int    // Document row
	StartCol int    // Starting column (rune index)
	EndCol   int    // Ending column (rune index)
	Word     string // The misspelled word
}

// SpellChecker provides spell checking backed by a fuzzy model trained on
// an embedded word list.
type SpellChecker struct {
	model *fuzzy.Model
}

// NewSpellChecker trains a model on the embedded dictionary.
func NewSpellChecker() (*SpellChecker, error) {
	model := fuzzy.NewModel()

	// Depth 2 trades a little accuracy for much faster training.
	model.SetDepth(2)

	for _, word := range strings.Split(dictionaryData, "\n") {
		word = strings.TrimSpace(word)
		if word != "" {
			model.TrainWord(word)
		}
	}

	return &SpellChecker{model: model}, nil
}

// CheckWord returns true if the word is spelled correctly.
func (sc *SpellChecker) CheckWord(word string) bool {
	if word == "" {
		return true
	}

	lowerWord := strings.ToLower(word)

	// SpellCheck returns the dictionary word itself when it is known, and
	// an empty string or a correction otherwise.
	correction := sc.model.SpellCheck(lowerWord)
	return correction != "" && correction == lowerWord
}

// wordPosition represents a word and its position in a line.
type wordPosition struct {
	word     string
	startCol int
	endCol   int
}

// ExtractWords tokenizes a line into words with their rune-index
// positions. Words are sequences of letters and interior apostrophes.
func ExtractWords(line string) []wordPosition {
	var words []wordPosition
	runes := []rune(line)

	inWord := false
	var startCol int
	var currentWord strings.Builder

	for i, r := range runes {
		isLetter := unicode.IsLetter(r)
		isApostrophe := r == '\''

		if isLetter || (isApostrophe && inWord) {
			if !inWord {
				startCol = i
				inWord = true
				currentWord.Reset()
			}
			currentWord.WriteRune(r)
		} else if inWord {
			words = append(words, wordPosition{
				word:     currentWord.String(),
				startCol: startCol,
				endCol:   i,
			})
			inWord = false
		}
	}

	if inWord {
		words = append(words, wordPosition{
			word:     currentWord.String(),
			startCol: startCol,
			endCol:   len(runes),
		})
	}

	return words
}

// CheckLine checks one line and returns its spelling errors.
func (sc *SpellChecker) CheckLine(row int, line string) []SpellError {
	var errors []SpellError

	for _, wp := range ExtractWords(line) {
		wordRunes := []rune(wp.word)

		// Fuzzy matching is useless on 1–2 letter words, and they are
		// rarely misspelled anyway.
		if len(wordRunes) <= 2 {
			continue
		}

		// Skip all-uppercase words (likely acronyms).
		allUpper := true
		for _, r := range wordRunes {
			if unicode.IsLetter(r) && !unicode.IsUpper(r) {
				allUpper = false
				break
			}
		}
		if allUpper {
			continue
		}

		if !sc.CheckWord(wp.word) {
			errors = append(errors, SpellError{
				Row:      row,
				StartCol: wp.startCol,
				EndCol:   wp.endCol,
				Word:     wp.word,
			})
		}
	}

	return errors
}

// CheckDocument checks every row and returns all spelling errors.
func (sc *SpellChecker) CheckDocument(doc *Document) []SpellError {
	var errors []SpellError
	for row, line := range doc.Rows() {
		errors = append(errors, sc.CheckLine(row, line.String())...)
	}
	return errors
}
