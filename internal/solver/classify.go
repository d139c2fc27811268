package solver

import (
	"iter"

	"github.com/harrison/spellingbee/internal/puzzle"
)

// Entry is one accepted word tagged with its classification.
type Entry struct {
	Word    string
	Pangram bool
}

// Result holds the accepted words split into pangrams and the rest, each in
// dictionary-scan order.
type Result struct {
	Pangrams []string
	Others   []string
}

// Total returns the number of accepted words.
func (r Result) Total() int {
	return len(r.Pangrams) + len(r.Others)
}

// Entries returns all words, pangrams first, with their classification.
func (r Result) Entries() []Entry {
	entries := make([]Entry, 0, r.Total())
	for _, w := range r.Pangrams {
		entries = append(entries, Entry{Word: w, Pangram: true})
	}
	for _, w := range r.Others {
		entries = append(entries, Entry{Word: w})
	}
	return entries
}

// Classify partitions already-filtered words into pangrams and others.
// A word is a pangram when, as written, it uses every puzzle letter at least
// once; "abCdefg" is not a pangram of a b c d e f g.
func Classify(words iter.Seq[string], letters *puzzle.LetterSet) Result {
	var res Result
	for w := range words {
		if letters.CoveredBy(w) {
			res.Pangrams = append(res.Pangrams, w)
		} else {
			res.Others = append(res.Others, w)
		}
	}
	return res
}

// LineSource is the dictionary abstraction Solve reads from.
type LineSource interface {
	Lines() iter.Seq[string]
}

// Solve streams src through the filter for letters and classifies the
// accepted words in a single pass.
func Solve(src LineSource, letters *puzzle.LetterSet) Result {
	return Classify(NewFilter(letters).Words(src.Lines()), letters)
}
