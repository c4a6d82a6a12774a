package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// HorizontalRule is the rendering of a --- line.
const HorizontalRule = `<hr style="border: 0; border-top: 1px solid #ddd; margin: 20px 0;">`

var (
	hrPattern      = regexp.MustCompile(`(?m)^---$`)
	headingPattern = regexp.MustCompile(`(?m)^(#+)[ \t]+(.+)$`)
)

// horizontalRules renders lines made of exactly three dashes.
//
// Pre: code blocks placeholdered.
func horizontalRules(buf string) string {
	return hrPattern.ReplaceAllLiteralString(buf, HorizontalRule)
}

// headings renders ATX headings of any depth; the level is the length of
// the # run. Font size shrinks 2px per level from 28px.
//
// Pre: code blocks placeholdered, newlines still present.
func headings(buf string) string {
	return headingPattern.ReplaceAllStringFunc(buf, func(line string) string {
		m := headingPattern.FindStringSubmatch(line)
		return Heading(len(m[1]), m[2])
	})
}

// Heading renders text as a level heading.
func Heading(level int, text string) string {
	return fmt.Sprintf(`<h%d style="font-size: %dpx; font-weight: bold; margin: 10px 0;">%s</h%d>`,
		level, 28-level*2, text, level)
}

// lineBreaks turns every newline into <br>.
//
// Post: the buffer is a single line; later stages see no \n.
func lineBreaks(buf string) string {
	return strings.ReplaceAll(buf, "\n", "<br>")
}
