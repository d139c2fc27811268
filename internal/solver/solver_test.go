package solver

import (
	"slices"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/spellingbee/internal/puzzle"
	"github.com/harrison/spellingbee/internal/wordlist"
)

func mustLetters(t *testing.T, letters string) *puzzle.LetterSet {
	t.Helper()
	tokens := strings.Split(letters, "")
	ls, err := puzzle.NewLetterSet(tokens)
	require.NoError(t, err)
	return ls
}

func TestFilter_Accepts(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	f := NewFilter(ls)

	tests := []struct {
		word string
		want bool
	}{
		{"cabbage", true},
		{"cabal", false}, // l is not a puzzle letter
		{"cab", false},   // too short
		{"dab", false},   // too short
		{"Cabin", false}, // proper noun
		{"bead", true},   // exactly four letters
		{"beef", false},  // no center letter
		{"faced", true},
		{"aBcd", true},  // only the first character is checked for case
		{"ABCD", false}, // uppercase first character
		{"Éabc", false}, // É is not a puzzle letter
		{"", false},
		{"abc d", false}, // space is not a puzzle letter
		{"deaf-", false},
		{"aaaa", true}, // repeats allowed
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Accepts(tt.word))
		})
	}
}

func TestFilter_Words(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	lines := []string{"cab", "cabbage", "Cabin", "cabal", "dab", "bead", "faded", "gaff"}

	got := slices.Collect(NewFilter(ls).Words(slices.Values(lines)))

	assert.Equal(t, []string{"cabbage", "bead", "faded", "gaff"}, got)
}

func TestFilter_WordsKeepsOriginalSpelling(t *testing.T) {
	ls := mustLetters(t, "ABCDEFG")
	got := slices.Collect(NewFilter(ls).Words(slices.Values([]string{"bAdGe", "Badge"})))

	assert.Equal(t, []string{"bAdGe"}, got)
}

func TestFilter_Properties(t *testing.T) {
	ls := mustLetters(t, "tonical")
	lines := []string{
		"action", "cation", "Latino", "tonic", "tonal", "iconic", "cantina",
		"lotion", "anti", "into", "tint", "coital", "cocoa", "Clint", "total",
		"colt", "talon", "ant", "cat", "tactical", "ilia",
	}

	for _, w := range slices.Collect(NewFilter(ls).Words(slices.Values(lines))) {
		lower := strings.ToLower(w)
		assert.GreaterOrEqual(t, len([]rune(w)), MinWordLength, w)
		assert.Contains(t, lower, "t", w)
		assert.False(t, unicode.IsUpper([]rune(w)[0]), w)
		for _, r := range lower {
			assert.Truef(t, ls.Contains(r), "%q uses %q", w, r)
		}
	}
}

func TestClassify(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	words := []string{"cabbage", "fadedcabbage", "bead", "gfedcba", "faded"}

	res := Classify(slices.Values(words), ls)

	assert.Equal(t, []string{"fadedcabbage", "gfedcba"}, res.Pangrams)
	assert.Equal(t, []string{"cabbage", "bead", "faded"}, res.Others)
	assert.Equal(t, 5, res.Total())
	assert.Equal(t, []Entry{
		{Word: "fadedcabbage", Pangram: true},
		{Word: "gfedcba", Pangram: true},
		{Word: "cabbage"},
		{Word: "bead"},
		{Word: "faded"},
	}, res.Entries())
}

func TestFilter_OnlyASCIICapitalsMarkProperNouns(t *testing.T) {
	ls := mustLetters(t, "abcdéfg")
	lines := []string{"Ébcda", "ébcda", "Abcdé"}

	got := slices.Collect(NewFilter(ls).Words(slices.Values(lines)))

	assert.Equal(t, []string{"Ébcda", "ébcda"}, got)
}

func TestClassify_PangramMatchesWordAsWritten(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	words := slices.Collect(NewFilter(ls).Words(slices.Values([]string{"abCdefg", "gfedcba"})))
	require.Equal(t, []string{"abCdefg", "gfedcba"}, words)

	res := Classify(slices.Values(words), ls)

	assert.Equal(t, []string{"gfedcba"}, res.Pangrams)
	assert.Equal(t, []string{"abCdefg"}, res.Others)
}

func TestClassify_PangramBoundary(t *testing.T) {
	ls := mustLetters(t, "abcdefg")

	// cabbaged has a, b, c, d, e, g but no f.
	res := Classify(slices.Values([]string{"cabbaged"}), ls)
	assert.Empty(t, res.Pangrams)
	assert.Equal(t, []string{"cabbaged"}, res.Others)

	// Duplicated puzzle letters shrink the set a pangram must cover.
	dup := mustLetters(t, "aabbccd")
	res = Classify(slices.Values([]string{"abcd", "abca"}), dup)
	assert.Equal(t, []string{"abcd"}, res.Pangrams)
	assert.Equal(t, []string{"abca"}, res.Others)
}

func TestSolve(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	src := wordlist.FromLines("cab", "cabbage", "Cabin", "cabal", "dab", "gfedcba", "bead", "Fadedcabbage")

	res := Solve(src, ls)

	assert.Equal(t, []string{"gfedcba"}, res.Pangrams)
	assert.Equal(t, []string{"cabbage", "bead"}, res.Others)
	assert.Equal(t, 8, src.Stats().Lines)
}

func TestSolve_MatchesFilterThenClassify(t *testing.T) {
	ls := mustLetters(t, "lacunae")
	lines := []string{"lacuna", "canal", "Annual", "cellular", "lace", "uncle", "clean", "lacunae", "nuance"}

	direct := Solve(wordlist.FromLines(lines...), ls)
	staged := Classify(NewFilter(ls).Words(slices.Values(lines)), ls)

	assert.Equal(t, staged, direct)
}

func TestSolve_Idempotent(t *testing.T) {
	ls := mustLetters(t, "abcdefg")
	lines := []string{"cabbage", "gfedcba", "bead", "faded", "decaf", "badge"}

	first := Solve(wordlist.FromLines(lines...), ls)
	second := Solve(wordlist.FromLines(lines...), ls)

	assert.Equal(t, first, second)
}

func TestSolve_EmptySource(t *testing.T) {
	ls := mustLetters(t, "abcdefg")

	res := Solve(wordlist.NewSource(strings.NewReader(""), "empty"), ls)

	assert.Equal(t, 0, res.Total())
	assert.Empty(t, res.Entries())
}
