package hangman

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmptyPool   = errors.New("word pool is empty")
	ErrInvalidWord = errors.New("word must contain only letters")
)

// DefaultWords is the built-in word list
var DefaultWords = []string{
	"program", "java", "arrays", "object", "school",
	"hangman", "university", "copilot", "engineering", "tictactoe",
}

// WordPool is an immutable list of lowercase candidate words
type WordPool struct {
	words []string
}

// NewWordPool lowercases and validates words into a pool
func NewWordPool(words ...string) (WordPool, error) {
	if len(words) == 0 {
		return WordPool{}, ErrEmptyPool
	}
	lower := cases.Lower(language.Und)
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = lower.String(strings.TrimSpace(w))
		if w == "" || strings.IndexFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
			return WordPool{}, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		normalized = append(normalized, w)
	}
	return WordPool{words: normalized}, nil
}

// DefaultWordPool returns the pool built from DefaultWords
func DefaultWordPool() WordPool {
	pool, err := NewWordPool(DefaultWords...)
	if err != nil {
		panic(err)
	}
	return pool
}

// LoadWordPool reads a JSON array of words from path
func LoadWordPool(path string) (WordPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WordPool{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return WordPool{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	pool, err := NewWordPool(words...)
	if err != nil {
		return WordPool{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return pool, nil
}

// Len returns the number of words in the pool
func (p WordPool) Len() int {
	return len(p.words)
}

// Selector returns an index in [0, n)
type Selector func(n int) int

// RandomSelector draws from the process-wide uniform source
func RandomSelector() Selector {
	return rand.IntN
}

// SeededSelector returns a deterministic selector for a given seed
func SeededSelector(seed int64) Selector {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	return r.IntN
}

// FixedSelector always picks the same index, wrapped into [0, n)
func FixedSelector(index int) Selector {
	return func(n int) int {
		return (index%n + n) % n
	}
}
