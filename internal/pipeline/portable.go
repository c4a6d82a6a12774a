package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2rich/internal/imageres"
	"github.com/alnah/go-md2rich/internal/vault"
)

// Portable rewrites vault embeds as standard markdown images pointing at
// file:/// URLs, leaving everything else untouched. Embeds with no matching
// file stay as they are.
func Portable(ctx context.Context, md string, v vault.Vault) (string, error) {
	matches := internalImagePattern.FindAllStringSubmatch(md, -1)
	if len(matches) == 0 {
		return md, nil
	}
	if v == nil {
		return "", fmt.Errorf("portable markdown: %w", imageres.ErrNoVault)
	}

	files, err := v.Files()
	if err != nil {
		return "", fmt.Errorf("listing vault: %w", err)
	}

	out := md
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		token := m[1]
		f, ok := vault.Find(files, token)
		if !ok {
			continue
		}
		resource, err := v.ResourcePath(f)
		if err != nil {
			return "", fmt.Errorf("resource path for %s: %w", f.Path, err)
		}
		out = strings.Replace(out, m[0], "!["+token+"]("+vault.FileURL(resource)+")", 1)
	}
	return out, nil
}
