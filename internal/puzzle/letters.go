// Package puzzle models the seven letters of a Spelling Bee board.
package puzzle

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// LetterCount is the number of letter tokens a board is built from.
const LetterCount = 7

// ErrLetterCount is returned when a board is built from the wrong number of tokens.
var ErrLetterCount = errors.New("exactly 7 letters are required")

// LetterSet holds the center letter and the set of letters a word may use.
// It is immutable once built.
type LetterSet struct {
	center    rune
	hasCenter bool
	valid     map[rune]struct{}
	order     []rune
}

// NewLetterSet builds a LetterSet from exactly seven tokens. Only the first
// character of each token is used, lowercased. Token 0 is the center letter.
// Duplicate letters collapse, so the set may hold fewer than seven members.
func NewLetterSet(tokens []string) (*LetterSet, error) {
	if len(tokens) != LetterCount {
		return nil, fmt.Errorf("got %d letters: %w", len(tokens), ErrLetterCount)
	}

	ls := &LetterSet{valid: make(map[rune]struct{}, LetterCount)}
	for i, tok := range tokens {
		if tok == "" {
			// An empty token contributes no letter. An empty center
			// token leaves the center requirement unset.
			continue
		}
		r, _ := utf8.DecodeRuneInString(tok)
		r = unicode.ToLower(r)
		if i == 0 {
			ls.center = r
			ls.hasCenter = true
		}
		if _, ok := ls.valid[r]; !ok {
			ls.valid[r] = struct{}{}
			ls.order = append(ls.order, r)
		}
	}
	return ls, nil
}

// Center returns the letter every accepted word must contain.
func (ls *LetterSet) Center() rune {
	return ls.center
}

// HasCenter reports whether a center letter was supplied.
func (ls *LetterSet) HasCenter() bool {
	return ls.hasCenter
}

// Contains reports whether r is one of the puzzle letters.
func (ls *LetterSet) Contains(r rune) bool {
	_, ok := ls.valid[r]
	return ok
}

// CoveredBy reports whether every puzzle letter occurs in word at least once.
// word is matched as written, so an uppercase letter does not count.
func (ls *LetterSet) CoveredBy(word string) bool {
	seen := make(map[rune]struct{}, len(ls.valid))
	for _, r := range word {
		if ls.Contains(r) {
			seen[r] = struct{}{}
		}
	}
	return len(seen) == len(ls.valid)
}

// String renders the letters with the center first, e.g. "a[bcdefg]".
// A board without a center renders as "[bcdefg]".
func (ls *LetterSet) String() string {
	rest := make([]rune, 0, len(ls.order))
	for _, r := range ls.order {
		if !ls.hasCenter || r != ls.center {
			rest = append(rest, r)
		}
	}
	if !ls.hasCenter {
		return fmt.Sprintf("[%s]", string(rest))
	}
	return fmt.Sprintf("%c[%s]", ls.center, string(rest))
}
