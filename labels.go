package modelkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// AttributeLabel returns the display label for an attribute: the explicit
// label when one was set, otherwise a label generated from the attribute
// name. Labels fill the {{name}} placeholder of validation messages.
func (m *Model) AttributeLabel(name string) string {
	if label, ok := m.labels[name]; ok {
		return label
	}
	return generateLabel(name)
}

// generateLabel turns an attribute name into a human-readable label:
// "firstName", "first_name" and "first-name" all become "First Name".
func generateLabel(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	var prev rune
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()
	if len(words) == 0 {
		return name
	}
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
