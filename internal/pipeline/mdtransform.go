package pipeline

import (
	"regexp"
	"strings"
)

// Code block placeholders use Unicode Private Use Area characters as
// delimiters. No later stage matches them, and they are stripped from the
// input so an author cannot forge one.
const (
	PlaceholderStart = "\uE000" // U+E000: Private Use Area start
	PlaceholderEnd   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	placeholderChars = strings.NewReplacer(PlaceholderStart, "", PlaceholderEnd, "")
)

// normalize converts \r\n and \r to \n and removes placeholder delimiters.
func normalize(content string) string {
	return placeholderChars.Replace(crlfOrCR.ReplaceAllString(content, "\n"))
}
