package md2rich

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"github.com/alnah/go-md2rich/internal/assets"
	"github.com/alnah/go-md2rich/internal/fileutil"
	"github.com/alnah/go-md2rich/internal/imageres"
	"github.com/alnah/go-md2rich/internal/pipeline"
)

// Converter converts notes to styled HTML.
// Create with NewConverter. A Converter is safe for concurrent use; each
// call builds its own working state.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.AssetLoader
	transformer *pipeline.Transformer
	page        *template.Template
	style       string
}

// NewConverter creates a Converter. Options are validated and the export
// style and template are loaded up front, so a bad asset fails here rather
// than on first use.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			maxImageSize: DefaultMaxImageSize,
			layout:       DefaultLayout(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.loadTemplate(); err != nil {
		return nil, err
	}

	logger := c.cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.transformer = pipeline.NewTransformer(pipeline.Options{
		Resolver: &imageres.Resolver{
			Vault:        c.cfg.vault,
			ReadExternal: c.cfg.readExternal,
			MaxSize:      c.cfg.maxImageSize,
			Concurrency:  c.cfg.concurrency,
			Logger:       logger,
		},
		Layout:  c.cfg.layout.pipeline(),
		Compact: c.cfg.compact,
	})
	return c, nil
}

func (cfg *converterConfig) validate() error {
	if cfg.concurrency < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidConcurrency, cfg.concurrency)
	}
	if cfg.maxImageSize <= 0 {
		return fmt.Errorf("%w: %d (must be > 0)", ErrInvalidMaxImageSize, cfg.maxImageSize)
	}
	return cfg.layout.Validate()
}

// Convert returns the styled HTML fragment for input. Unresolvable images
// become diagnostics in the output; errors are reserved for empty input,
// cancellation and internal failures.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	html, err := c.transformer.Convert(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	return &Result{HTML: html, Plain: input.Markdown}, nil
}

// PortableMarkdown rewrites vault embeds in input as standard Markdown
// images with file:/// URLs. Embeds without a matching vault file are kept
// as written.
func (c *Converter) PortableMarkdown(ctx context.Context, input Input) (string, error) {
	if input.Markdown == "" {
		return "", ErrEmptyMarkdown
	}
	md, err := pipeline.Portable(ctx, input.Markdown, c.cfg.vault)
	if err != nil {
		return "", fmt.Errorf("converting to portable markdown: %w", err)
	}
	return md, nil
}

// resolveStyle loads the export stylesheet: a path, CSS content or a name.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %v", ErrStyleNotFound, input, err)
		}
		c.style = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.style = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err, ErrStyleNotFound))
	}
	c.style = css
	return nil
}

// loadTemplate loads and parses the export page template.
func (c *Converter) loadTemplate() error {
	name := c.cfg.templateName
	if name == "" {
		name = assets.DefaultTemplateName
	}

	var content string
	if fileutil.IsFilePath(name) {
		data, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading template file %q: %v", ErrTemplateNotFound, name, err)
		}
		content = string(data)
	} else {
		var err error
		content, err = c.assetLoader.LoadTemplate(name)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", name, convertAssetError(err, ErrTemplateNotFound))
		}
	}

	tmpl, err := template.New("document").Parse(content)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %v", ErrTemplateRender, name, err)
	}
	c.page = tmpl
	return nil
}
