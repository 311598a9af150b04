package irandom

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cute-angelia/go-xrand/syntax/isource"
)

func TestUniquePatternsDistinct(t *testing.T) {
	subs := []string{string(LetterAbcLower), string(LetterNum)}
	out, err := UniquePatterns(isource.Crypto(), 500, 8, subs)
	require.NoError(t, err)
	require.Len(t, out, 500)

	seen := make(map[string]bool)
	for _, s := range out {
		require.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
		require.Equal(t, 8, utf8.RuneCountInString(s))
		requireMembers(t, s, string(LetterAbcLower)+string(LetterNum))
		for _, sub := range subs {
			require.True(t, strings.ContainsAny(s, sub), "%q lacks %q", s, sub)
		}
	}
}

func TestUniquePatternsExclude(t *testing.T) {
	out, err := UniquePatterns(isource.Crypto(), 1000, 4, []string{"abcdefgh"}, "abcd", "efgh")
	require.NoError(t, err)
	assert.NotContains(t, out, "abcd")
	assert.NotContains(t, out, "efgh")

	// 只剩两个可选值
	out, err = UniquePatterns(isource.Crypto(), 2, 2, []string{"ab"}, "ab", "ba")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"aa", "bb"}, out)
}

func TestUniquePatternsZeroCount(t *testing.T) {
	out, err := UniquePatterns(failing(), 0, 8, []string{"abc"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUniquePatternsUnrepresentable(t *testing.T) {
	// "ab" 长度 2 只有 4 种
	_, err := UniquePatterns(failing(), 5, 2, []string{"ab"})
	assert.ErrorIs(t, err, ErrExhausted)

	// 重复字符不计入
	_, err = UniquePatterns(failing(), 2, 1, []string{"aaa"})
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestUniquePatternsExcludedSpace(t *testing.T) {
	src := &countingSource{src: isource.Crypto()}
	_, err := UniquePatterns(src, 1, 1, []string{"ab"}, "a", "b")
	assert.ErrorIs(t, err, ErrExhausted)
	assert.NotZero(t, src.drawn)
}

func TestUniquePatternsDeterministic(t *testing.T) {
	subs := []string{string(LetterAbcUpper), string(LetterNum)}
	a, err := UniquePatterns(isource.NewChaCha20FromSeed("batch"), 20, 6, subs)
	require.NoError(t, err)
	b, err := UniquePatterns(isource.NewChaCha20FromSeed("batch"), 20, 6, subs)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUniquePatternsInvalid(t *testing.T) {
	_, err := UniquePatterns(isource.Counting(), 1, 4, nil)
	assert.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = UniquePatterns(isource.Counting(), 1, -4, []string{"abc"})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRepresentable(t *testing.T) {
	assert.True(t, representable(2, 2, 4))
	assert.False(t, representable(2, 2, 5))
	assert.True(t, representable(1, 0, 1))
	assert.False(t, representable(62, 0, 2))
	assert.True(t, representable(256, 64, 1<<62))
}
