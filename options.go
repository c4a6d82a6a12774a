package md2rich

import (
	"log/slog"

	"github.com/alnah/go-md2rich/internal/imageres"
)

// DefaultMaxImageSize is the size ceiling for vault images (10 MiB).
const DefaultMaxImageSize = imageres.DefaultMaxSize

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the options applied by NewConverter.
type converterConfig struct {
	vault        Vault
	readExternal func(path string) ([]byte, error)
	maxImageSize int64
	concurrency  int
	layout       Layout
	compact      bool
	logger       *slog.Logger
	assetPath    string
	styleInput   string
	templateName string
}

// WithVault sets the vault that ![[...]] embeds resolve against.
func WithVault(v Vault) Option {
	return func(c *Converter) {
		c.cfg.vault = v
	}
}

// WithExternalReader replaces os.ReadFile for file:/// images.
func WithExternalReader(read func(path string) ([]byte, error)) Option {
	return func(c *Converter) {
		c.cfg.readExternal = read
	}
}

// WithMaxImageSize sets the size ceiling for vault images. Larger images
// become "[image too large: ...]" without being read. External images have
// no ceiling.
func WithMaxImageSize(n int64) Option {
	return func(c *Converter) {
		c.cfg.maxImageSize = n
	}
}

// WithConcurrency bounds parallel image resolutions. 0 means one goroutine
// per distinct reference.
func WithConcurrency(n int) Option {
	return func(c *Converter) {
		c.cfg.concurrency = n
	}
}

// WithLayout sets the output container layout.
func WithLayout(l Layout) Option {
	return func(c *Converter) {
		c.cfg.layout = l
	}
}

// WithCompact collapses runs of blank lines and drops the line break that
// follows headings and rules.
func WithCompact(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.compact = enabled
	}
}

// WithLogger sets the logger for per-image diagnostics. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}

// WithAssetPath sets a directory of custom styles and templates that take
// precedence over the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyle sets the export stylesheet: a style name, a path to a .css
// file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the export page template: a template name or a path to
// an .html file.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}
