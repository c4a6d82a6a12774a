package pipeline

import (
	"regexp"
	"strings"
)

var (
	brRuns         = regexp.MustCompile(`(?:<br>){3,}`)
	brAfterBlock   = regexp.MustCompile(`(</h[1-6]>|<hr[^>]*>)<br>`)
	surroundingBrs = regexp.MustCompile(`^(?:<br>)+|(?:<br>)+$`)
)

// compact collapses blank-line runs and drops the break after block
// elements. Placeholder tokens contain no <br>, so code blocks are untouched.
//
// Pre: all inline stages done, placeholders not yet restored.
func compact(buf string) string {
	buf = brRuns.ReplaceAllLiteralString(buf, "<br><br>")
	buf = brAfterBlock.ReplaceAllString(buf, "${1}")
	return strings.TrimSpace(surroundingBrs.ReplaceAllLiteralString(buf, ""))
}
