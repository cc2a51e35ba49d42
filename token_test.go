package tothepoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tothepoint "github.com/drivernf/to-the-point"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("strips punctuation and stop-words, keeps internal apostrophes", func(t *testing.T) {
		t.Parallel()

		tokens := tothepoint.Tokenize("The Quick, Fox's nap!")

		assert.Equal(t, []string{"quick", "fox's", "nap"}, tokens)
	})

	t.Run("drops single-character tokens", func(t *testing.T) {
		t.Parallel()

		tokens := tothepoint.Tokenize("a b c go run")

		assert.Equal(t, []string{"go", "run"}, tokens)
	})

	t.Run("keeps digits", func(t *testing.T) {
		t.Parallel()

		tokens := tothepoint.Tokenize("HTTP 404 errors in 2024")

		assert.Equal(t, []string{"http", "404", "errors", "2024"}, tokens)
	})

	t.Run("empty and stop-word-only input yield no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tothepoint.Tokenize(""))
		assert.Empty(t, tothepoint.Tokenize("the of and"))
	})
}

func TestNormalizePhrase(t *testing.T) {
	t.Parallel()

	t.Run("collapses non-alphanumeric runs to single spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "climate policy overview",
			tothepoint.NormalizePhrase("Climate — Policy: Overview!"))
	})

	t.Run("trims leading and trailing separators", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello world", tothepoint.NormalizePhrase("  ...hello,world?? "))
	})

	t.Run("keeps stop-words, unlike Tokenize", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "the quick fox", tothepoint.NormalizePhrase("The Quick Fox"))
	})
}
