package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle uppercases the first letter of each space-separated word and
// lowercases the rest.
func ToTitle(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// CollapseWhitespace trims a string and replaces every internal whitespace
// run with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Digits removes every non-digit rune from a string.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate cuts a string to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
