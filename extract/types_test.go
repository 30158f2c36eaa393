package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateChars(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", TruncateChars("hello", 10))
	})

	t.Run("non-positive limit unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", TruncateChars("hello", 0))
		assert.Equal(t, "hello", TruncateChars("hello", -1))
	})

	t.Run("truncates by characters", func(t *testing.T) {
		assert.Equal(t, "hel", TruncateChars("hello", 3))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		// 10 two-byte runes: 20 bytes but only 10 characters
		text := strings.Repeat("é", 10)
		assert.Equal(t, text, TruncateChars(text, 10))
		assert.Equal(t, strings.Repeat("é", 4), TruncateChars(text, 4))
	})

	t.Run("never splits a rune", func(t *testing.T) {
		got := TruncateChars("日本語のテキスト", 3)
		assert.Equal(t, "日本語", got)
		assert.True(t, utf8.ValidString(got))
	})
}
