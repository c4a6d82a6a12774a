package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// fencedCodePattern matches ``` fenced blocks. The optional first line is
// the language tag; a fence with no newline before the closing ``` has no tag.
var fencedCodePattern = regexp.MustCompile("(?s)```(?:([^\n`]*)\n)?(.*?)```")

// Inline styles for rendered code blocks.
const (
	codeBlockStyle  = "display: flex; background-color: #f6f8fa; border-radius: 3px; margin: 10px 0; overflow: auto; text-align: left;"
	lineNumberStyle = "list-style: none; margin: 0; padding: 16px 8px 16px 16px; color: #999; text-align: right; user-select: none; font-family: Consolas, Monaco, 'Andale Mono', 'Ubuntu Mono', monospace; font-size: 14px; line-height: 1.5;"
	codePreStyle    = "margin: 0; padding: 16px; flex: 1; overflow: auto;"
	codeStyle       = "font-family: Consolas, Monaco, 'Andale Mono', 'Ubuntu Mono', monospace; font-size: 14px; line-height: 1.5;"
)

// CodeBlocks stores rendered code blocks behind placeholder tokens.
// A table lives for one conversion and is never shared.
type CodeBlocks struct {
	blocks []string
}

// Placeholder returns the token for block n.
func Placeholder(n int) string {
	return PlaceholderStart + strconv.Itoa(n) + PlaceholderEnd
}

// Add stores rendered HTML and returns its placeholder token.
func (c *CodeBlocks) Add(html string) string {
	token := Placeholder(len(c.blocks))
	c.blocks = append(c.blocks, html)
	return token
}

// Len returns the number of stored blocks.
func (c *CodeBlocks) Len() int {
	return len(c.blocks)
}

// Extract replaces every fenced block in buf with a placeholder.
//
// Pre: image stages done. Post: no ``` fence remains; block content is out
// of reach of every later rewriting stage.
func (c *CodeBlocks) Extract(buf string) string {
	return fencedCodePattern.ReplaceAllStringFunc(buf, func(match string) string {
		m := fencedCodePattern.FindStringSubmatch(match)
		return c.Add(renderCodeBlock(languageTag(m[1]), trimCode(m[2])))
	})
}

// Restore substitutes every placeholder back with its rendered HTML.
func (c *CodeBlocks) Restore(buf string) string {
	for i, html := range c.blocks {
		buf = strings.Replace(buf, Placeholder(i), html, 1)
	}
	return buf
}

// languageTag returns the lowercased first word of an opening fence line.
func languageTag(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// trimCode drops blank lines around the code, keeping first-line indentation.
func trimCode(code string) string {
	code = strings.TrimRight(code, " \t\n")
	for {
		nl := strings.IndexByte(code, '\n')
		if nl < 0 || strings.TrimSpace(code[:nl]) != "" {
			return code
		}
		code = code[nl+1:]
	}
}

// renderCodeBlock builds the line-numbered block for code.
func renderCodeBlock(lang, code string) string {
	lines := strings.Count(code, "\n") + 1

	var b strings.Builder
	b.WriteString(`<div style="` + codeBlockStyle + `">`)
	b.WriteString(`<ul style="` + lineNumberStyle + `">`)
	for i := 1; i <= lines; i++ {
		b.WriteString("<li>" + strconv.Itoa(i) + "</li>")
	}
	b.WriteString(`</ul><pre style="` + codePreStyle + `"><code style="` + codeStyle + `">`)
	b.WriteString(preserveSpaces(highlightStrings(lang, code)))
	b.WriteString("</code></pre></div>")
	return b.String()
}

var spaceRun = regexp.MustCompile(` {2,}`)

// preserveSpaces turns every run of two or more spaces into non-breaking
// spaces so rich-text consumers keep the indentation.
func preserveSpaces(s string) string {
	return spaceRun.ReplaceAllStringFunc(s, func(run string) string {
		return strings.Repeat("&nbsp;", len(run))
	})
}
