package md2rich

import (
	"errors"

	"github.com/alnah/go-md2rich/internal/imageres"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrNoVault is returned by PortableMarkdown when the note embeds vault
	// images but the converter has no vault.
	ErrNoVault = imageres.ErrNoVault

	// Option validation errors.
	ErrInvalidLayout       = errors.New("invalid layout")
	ErrInvalidConcurrency  = errors.New("invalid concurrency")
	ErrInvalidMaxImageSize = errors.New("invalid max image size")

	// Document rendering errors.
	ErrTemplateRender = errors.New("document template rendering failed")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
