package pipeline

import (
	"regexp"
	"strings"
)

// Inline code and link styles.
const (
	inlineCodeOpen = `<code style="background-color: #f0f0f0; padding: 2px 4px; border-radius: 3px;">`
	highlightOpen  = `<span style="background-color: yellow;">`
	linkStyle      = `color: #576b95; text-decoration: none;`
)

// Non-greedy and non-nested: each opening delimiter pairs with the nearest
// closing one.
var (
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	inlineCodePattern = regexp.MustCompile("`(.+?)`")
	highlightPattern  = regexp.MustCompile(`==([^=\n]+?)==`)
	linkPattern       = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// emphasis renders bold, then italic, then inline code.
//
// Pre: code blocks placeholdered, so fences never reach here.
func emphasis(buf string) string {
	buf = boldPattern.ReplaceAllString(buf, "<strong>${1}</strong>")
	buf = italicPattern.ReplaceAllString(buf, "<em>${1}</em>")
	return inlineCodePattern.ReplaceAllString(buf, inlineCodeOpen+"${1}</code>")
}

// highlights renders ==text== marks.
func highlights(buf string) string {
	return highlightPattern.ReplaceAllString(buf, highlightOpen+"${1}</span>")
}

// links renders [label](url) links. A match directly preceded by '!' is
// image syntax and is left alone; the scan resumes one byte past its '['
// so a real link inside the label can still match.
func links(buf string) string {
	var b strings.Builder
	pos := 0
	for pos < len(buf) {
		loc := linkPattern.FindStringSubmatchIndex(buf[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if start > 0 && buf[start-1] == '!' {
			b.WriteString(buf[pos : start+1])
			pos = start + 1
			continue
		}
		label := buf[pos+loc[2] : pos+loc[3]]
		href := buf[pos+loc[4] : pos+loc[5]]
		b.WriteString(buf[pos:start])
		b.WriteString(`<a href="` + href + `" style="` + linkStyle + `">` + label + `</a>`)
		pos = end
	}
	b.WriteString(buf[pos:])
	return b.String()
}
