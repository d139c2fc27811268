package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLetterSet(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		wantCenter rune
		wantString string
		wantIn     []rune
		wantOut    []rune
	}{
		{
			name:       "seven distinct lowercase letters",
			tokens:     []string{"a", "b", "c", "d", "e", "f", "g"},
			wantCenter: 'a',
			wantString: "a[bcdefg]",
			wantIn:     []rune("abcdefg"),
			wantOut:    []rune("hzA"),
		},
		{
			name:       "uppercase tokens are folded",
			tokens:     []string{"T", "O", "N", "I", "C", "A", "L"},
			wantCenter: 't',
			wantString: "t[onical]",
			wantIn:     []rune("tonical"),
			wantOut:    []rune("TONICAL"),
		},
		{
			name:       "only the first character of a token counts",
			tokens:     []string{"apple", "bee", "cat", "dog", "egg", "fig", "gum"},
			wantCenter: 'a',
			wantString: "a[bcdefg]",
			wantIn:     []rune("abcdefg"),
			wantOut:    []rune("plu"),
		},
		{
			name:       "duplicates collapse",
			tokens:     []string{"a", "a", "b", "B", "c", "c", "c"},
			wantCenter: 'a',
			wantString: "a[bc]",
			wantIn:     []rune("abc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls, err := NewLetterSet(tt.tokens)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCenter, ls.Center())
			assert.True(t, ls.HasCenter())
			assert.Equal(t, tt.wantString, ls.String())
			for _, r := range tt.wantIn {
				assert.Truef(t, ls.Contains(r), "expected %q in set", r)
			}
			for _, r := range tt.wantOut {
				assert.Falsef(t, ls.Contains(r), "did not expect %q in set", r)
			}
		})
	}
}

func TestNewLetterSet_WrongCount(t *testing.T) {
	for _, n := range []int{0, 1, 6, 8, 12} {
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = "x"
		}

		ls, err := NewLetterSet(tokens)
		assert.Nil(t, ls)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLetterCount), "n=%d: %v", n, err)
	}
}

func TestLetterSet_CoveredBy(t *testing.T) {
	ls, err := NewLetterSet([]string{"a", "b", "c", "d", "e", "f", "g"})
	require.NoError(t, err)

	assert.False(t, ls.CoveredBy("cabbage"), "missing d and f")
	assert.False(t, ls.CoveredBy("cabbaged"), "missing f")
	assert.True(t, ls.CoveredBy("fadedcabbage"))
	assert.True(t, ls.CoveredBy("gfedcba"))
	assert.False(t, ls.CoveredBy(""))

	// Letters are matched as written.
	assert.False(t, ls.CoveredBy("abCdefg"), "C is not c")
	assert.True(t, ls.CoveredBy("abCcdefg"))
}

func TestLetterSet_StringKeepsInputOrder(t *testing.T) {
	ls, err := NewLetterSet([]string{"m", "o", "m", "e", "n", "t", "s"})
	require.NoError(t, err)

	assert.Equal(t, "m[oents]", ls.String())
}

func TestNewLetterSet_EmptyCenter(t *testing.T) {
	ls, err := NewLetterSet([]string{"", "b", "c", "d", "e", "f", "g"})
	require.NoError(t, err)

	assert.False(t, ls.HasCenter())
	assert.Equal(t, "[bcdefg]", ls.String())
}
