// Package solver finds Spelling Bee answers in a stream of dictionary words
// and splits them into pangrams and ordinary words.
package solver

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/harrison/spellingbee/internal/puzzle"
)

// MinWordLength is the shortest accepted answer, in characters.
const MinWordLength = 4

// Filter decides which dictionary words are valid answers for a board.
// A Filter is not safe for concurrent use.
type Filter struct {
	letters *puzzle.LetterSet
	lower   cases.Caser
}

// NewFilter returns a Filter for the given board.
func NewFilter(letters *puzzle.LetterSet) *Filter {
	return &Filter{
		letters: letters,
		lower:   cases.Lower(language.Und),
	}
}

// Accepts reports whether word is an answer. All of these must hold:
//  1. it is at least MinWordLength characters long
//  2. it does not start with an ASCII capital (proper nouns)
//  3. its lowercase form contains the center letter
//  4. every character of its lowercase form is a puzzle letter
//
// Only A-Z count as capitals in rule 2, so a word such as "Émile" is judged
// by rules 3 and 4 alone.
func (f *Filter) Accepts(word string) bool {
	if first, _ := utf8.DecodeRuneInString(word); isASCIIUpper(first) {
		return false
	}

	lower := f.lower.String(word)
	if utf8.RuneCountInString(lower) < MinWordLength {
		return false
	}
	if f.letters.HasCenter() && !strings.ContainsRune(lower, f.letters.Center()) {
		return false
	}
	return lo.EveryBy([]rune(lower), f.letters.Contains)
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Words returns the lazy sequence of accepted words from lines, in source
// order and original spelling.
func (f *Filter) Words(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if !f.Accepts(line) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
