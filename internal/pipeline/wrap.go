package pipeline

import "strings"

// ContainerStyle is the base inline style of the wrapping element.
const ContainerStyle = "font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Open Sans', 'Helvetica Neue', sans-serif; color: #333; line-height: 1.6;"

// Layout controls the wrapping container.
type Layout struct {
	MaxWidth string // CSS length; empty means no width limit
	Center   bool
}

// Style returns the container's inline style for l.
func (l Layout) Style() string {
	var b strings.Builder
	b.WriteString(ContainerStyle)
	if l.MaxWidth != "" {
		b.WriteString(" max-width: " + l.MaxWidth + "; margin: 0 auto;")
	}
	if l.Center {
		b.WriteString(" text-align: center;")
	}
	return b.String()
}

// wrap returns a stage that encloses the buffer in the container div.
func wrap(l Layout) func(string) string {
	open := `<div style="` + l.Style() + `">`
	return func(buf string) string {
		return open + buf + "</div>"
	}
}
