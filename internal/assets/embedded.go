package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// EmbeddedLoader loads the built-in assets.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a built-in style.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.read("styles/", name, ".css", ErrStyleNotFound)
}

// LoadTemplate loads a built-in page template.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.read("templates/", name, ".html", ErrTemplateNotFound)
}

func (e *EmbeddedLoader) read(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := embedded.ReadFile(dir + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

// StyleNames lists the built-in styles.
func StyleNames() []string { return names("styles/*.css") }

// TemplateNames lists the built-in page templates.
func TemplateNames() []string { return names("templates/*.html") }

func names(pattern string) []string {
	matches, _ := fs.Glob(embedded, pattern) // pattern is constant
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		out = append(out, strings.TrimSuffix(base, path.Ext(base)))
	}
	return out
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
