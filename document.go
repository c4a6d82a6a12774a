package md2rich

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-md2rich/internal/pipeline"
)

// DefaultTitle titles exported documents with no heading and no name.
const DefaultTitle = "Untitled"

// documentData is the page template's data.
type documentData struct {
	Title string
	Style template.CSS
	Body  template.HTML
}

// Document returns a standalone HTML page for input: the converted
// fragment inside the export template, styled with the export stylesheet.
// The page title is the first level-1 heading, or input.Name.
func (c *Converter) Document(ctx context.Context, input Input) (*Result, error) {
	fragment, err := c.Convert(ctx, input)
	if err != nil {
		return nil, err
	}

	// #nosec G203 -- the stylesheet is configured by the user and the body
	// is pipeline output.
	data := documentData{
		Title: documentTitle(input),
		Style: template.CSS(sanitizeCSS(c.style)),
		Body:  template.HTML(fragment.HTML),
	}

	var b strings.Builder
	if err := c.page.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &Result{HTML: b.String(), Plain: input.Markdown}, nil
}

func documentTitle(input Input) string {
	if title := pipeline.FirstHeading(input.Markdown); title != "" {
		return title
	}
	if input.Name != "" {
		return input.Name
	}
	return DefaultTitle
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
