package sanitizer

import "html"

// EscapeHTML escapes special characters so the string is safe to embed in
// HTML output.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
