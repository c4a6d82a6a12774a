package md2rich

import (
	"fmt"
	"regexp"

	"github.com/alnah/go-md2rich/internal/pipeline"
	"github.com/alnah/go-md2rich/internal/vault"
)

// Input is one note to convert.
type Input struct {
	Markdown string // note content, or the selected part of it
	Name     string // document name without extension; export title fallback
}

// Result is a conversion output.
type Result struct {
	HTML  string // styled fragment (Convert) or complete page (Document)
	Plain string // plain-text fallback for rich clipboards: the input markdown
}

// Layout controls the container wrapping converted output.
type Layout struct {
	MaxWidth string // CSS length such as "720px" or "80%"; empty means unlimited
	Center   bool   // center-align text
}

// DefaultLayout returns the layout used when none is configured.
func DefaultLayout() Layout {
	return Layout{Center: true}
}

var cssLength = regexp.MustCompile(`^(?:0|[0-9]+(?:\.[0-9]+)?(?:px|em|rem|%|vw|ch|pt|pc|cm|mm|in))$`)

// Validate checks that MaxWidth is empty or a CSS length.
func (l Layout) Validate() error {
	if l.MaxWidth != "" && !cssLength.MatchString(l.MaxWidth) {
		return fmt.Errorf("%w: max width %q is not a CSS length", ErrInvalidLayout, l.MaxWidth)
	}
	return nil
}

func (l Layout) pipeline() pipeline.Layout {
	return pipeline.Layout{MaxWidth: l.MaxWidth, Center: l.Center}
}

// Vault is the file collection vault image embeds resolve against.
// Files must be returned in a stable listing order: the first file whose
// name contains the embed's trailing segment wins.
type Vault = vault.Vault

// VaultFile identifies a file within a Vault.
type VaultFile = vault.File

// VaultFileInfo is file metadata returned by Vault.Stat.
type VaultFileInfo = vault.Info

// OpenVault opens the vault rooted at dir on the local filesystem.
func OpenVault(dir string) (Vault, error) {
	return vault.Open(dir)
}

// DetectVaultRoot returns the vault directory containing the note at
// notePath: the nearest ancestor holding a .obsidian directory, or the
// note's own directory when there is none.
func DetectVaultRoot(notePath string) (string, error) {
	return vault.DetectRoot(notePath)
}
