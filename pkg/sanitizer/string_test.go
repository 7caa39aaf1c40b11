package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelkit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.Trim("  hello\t\n"))
	assert.Equal(t, "", sanitizer.Trim("   "))
}

func TestCaseConversion(t *testing.T) {
	assert.Equal(t, "hello", sanitizer.ToLower("HeLLo"))
	assert.Equal(t, "HELLO", sanitizer.ToUpper("HeLLo"))
}

func TestToTitle(t *testing.T) {
	t.Run("capitalizes each word", func(t *testing.T) {
		assert.Equal(t, "John Ronald Reuel", sanitizer.ToTitle("john RONALD reuel"))
	})

	t.Run("collapses surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "One Two", sanitizer.ToTitle("  one   two "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", sanitizer.ToTitle("   "))
	})
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", sanitizer.CollapseWhitespace("  a \t b \n c  "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "20268", sanitizer.Digits("2026-08 rev.x"))
	assert.Equal(t, "", sanitizer.Digits("no digits"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.Truncate("abcdef", 3))
	assert.Equal(t, "abc", sanitizer.Truncate("abc", 10))
	assert.Equal(t, "", sanitizer.Truncate("abc", 0))
	assert.Equal(t, "hél", sanitizer.Truncate("héllo", 3), "rune-based, not byte-based")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "tom@site.com", sanitizer.NormalizeEmail("  ToM@Site.COM  "))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", sanitizer.EscapeHTML("<b>hi</b>"))
}
