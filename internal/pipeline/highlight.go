package pipeline

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// stringSpanOpen starts a highlighted string literal.
const stringSpanOpen = `<span style="color: #22863a;">`

// quotedLiteral matches single- or double-quoted literals on one line.
var quotedLiteral = regexp.MustCompile(`"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`)

// highlightStrings escapes code and wraps its string literals in a
// coloured span. Nothing else is highlighted.
//
// A known language tag is tokenised with its chroma lexer; anything else
// falls back to a quoted-literal scan.
func highlightStrings(lang, code string) string {
	if lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			if out, ok := highlightTokens(lexer, code); ok {
				return out
			}
		}
	}
	return highlightQuoted(code)
}

// highlightTokens highlights using lexer tokens of the string subcategory.
func highlightTokens(lexer chroma.Lexer, code string) (string, bool) {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var b strings.Builder
	inString := false
	// Lexers may append a final newline; never emit more than the input.
	remaining := len(code)
	for _, tok := range it.Tokens() {
		v := tok.Value
		if len(v) > remaining {
			v = v[:remaining]
		}
		remaining -= len(v)
		if v == "" {
			continue
		}

		isString := tok.Type.InSubCategory(chroma.LiteralString)
		switch {
		case isString && !inString:
			b.WriteString(stringSpanOpen)
		case !isString && inString:
			b.WriteString("</span>")
		}
		inString = isString
		b.WriteString(escapeHTML(v))
	}
	if inString {
		b.WriteString("</span>")
	}
	return b.String(), true
}

// highlightQuoted highlights quoted literals found by regular expression.
func highlightQuoted(code string) string {
	var b strings.Builder
	last := 0
	for _, loc := range quotedLiteral.FindAllStringIndex(code, -1) {
		b.WriteString(escapeHTML(code[last:loc[0]]))
		b.WriteString(stringSpanOpen + escapeHTML(code[loc[0]:loc[1]]) + "</span>")
		last = loc[1]
	}
	b.WriteString(escapeHTML(code[last:]))
	return b.String()
}
