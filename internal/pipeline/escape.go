package pipeline

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeHTML escapes the five HTML-significant characters.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
