// Package hangman implements the word-guessing game state.
//
// The engine never refuses a guess: callers decide when a game is over,
// either through IsWordComplete or by comparing Misses to their own limit.
package hangman

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is shown in place of letters that have not been guessed
const Placeholder = '*'

// Feedback messages returned by GuessLetter
const (
	MsgGoodGuess      = "Good guess!"
	msgAlreadyGuessed = "%c is already guessed."
	msgNotInWord      = "%c is not in the word."
)

type cell struct {
	letter   rune
	revealed bool
}

// Engine holds the state of a single hangman game
type Engine struct {
	pool    WordPool
	pick    Selector
	word    string
	mask    []cell
	misses  int
	guessed map[rune]bool
}

// Option configures an Engine
type Option func(*Engine)

// WithSelector replaces the random word selector
func WithSelector(s Selector) Option {
	return func(e *Engine) {
		e.pick = s
	}
}

// NewEngine creates an engine over pool and starts the first game.
// A zero pool falls back to DefaultWords.
func NewEngine(pool WordPool, opts ...Option) *Engine {
	if pool.Len() == 0 {
		pool = DefaultWordPool()
	}
	e := &Engine{
		pool: pool,
		pick: RandomSelector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.StartNewGame()
	return e
}

// StartNewGame picks a new word and clears the mask, misses and guesses
func (e *Engine) StartNewGame() {
	e.word = e.pool.words[e.pick(len(e.pool.words))]
	e.mask = make([]cell, 0, len(e.word))
	for _, r := range e.word {
		e.mask = append(e.mask, cell{letter: r})
	}
	e.misses = 0
	e.guessed = make(map[rune]bool)
}

// DisplayWord renders the word with hidden letters as Placeholder
func (e *Engine) DisplayWord() string {
	var b strings.Builder
	for _, c := range e.mask {
		if c.revealed {
			b.WriteRune(c.letter)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Misses returns the number of distinct wrong guesses
func (e *Engine) Misses() int {
	return e.misses
}

// IsWordComplete reports whether every letter has been revealed
func (e *Engine) IsWordComplete() bool {
	return e.DisplayWord() == e.word
}

// GuessLetter records a guess and returns a feedback message.
// Repeated guesses change nothing and report that the letter was already guessed.
func (e *Engine) GuessLetter(c rune) string {
	c = normalize(c)
	if e.guessed[c] {
		return fmt.Sprintf(msgAlreadyGuessed, c)
	}
	e.guessed[c] = true

	found := false
	for i := range e.mask {
		if e.mask[i].letter == c {
			e.mask[i].revealed = true
			found = true
		}
	}

	if !found {
		e.misses++
		return fmt.Sprintf(msgNotInWord, c)
	}
	return MsgGoodGuess
}

// Word returns the secret word
func (e *Engine) Word() string {
	return e.word
}

// GuessedLetters returns the guessed letters in alphabetical order
func (e *Engine) GuessedLetters() []rune {
	letters := make([]rune, 0, len(e.guessed))
	for r := range e.guessed {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// HasGuessed reports whether the letter was already guessed, ignoring case
func (e *Engine) HasGuessed(c rune) bool {
	return e.guessed[normalize(c)]
}

func normalize(c rune) rune {
	r, _ := utf8.DecodeRuneInString(cases.Lower(language.Und).String(string(c)))
	return r
}
