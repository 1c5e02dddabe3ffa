package game

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

var (
	ErrEmptyGuess      = errors.New("please enter a letter")
	ErrMultipleLetters = errors.New("please enter only one letter")
	ErrNotALetter      = errors.New("invalid input, please enter a letter (A-Z)")
)

// ValidateGuess checks raw input before it reaches the hangman engine
func ValidateGuess(input string) (rune, error) {
	input = strings.TrimSpace(input)
	switch utf8.RuneCountInString(input) {
	case 0:
		return 0, ErrEmptyGuess
	case 1:
	default:
		return 0, ErrMultipleLetters
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !unicode.IsLetter(r) {
		return 0, ErrNotALetter
	}
	return r, nil
}

// CellForKey maps keypad digits 1-9 to board cells, row-major from the top left
func CellForKey(r rune) (tictactoe.Cell, bool) {
	if r < '1' || r > '9' {
		return tictactoe.Cell{}, false
	}
	i := int(r - '1')
	return tictactoe.Cell{Row: i / tictactoe.Size, Col: i % tictactoe.Size}, true
}
