package main

import (
	"errors"

	md2rich "github.com/alnah/go-md2rich"
	"github.com/alnah/go-md2rich/internal/assets"
	"github.com/alnah/go-md2rich/internal/clipboard"
	"github.com/alnah/go-md2rich/internal/config"
	"github.com/alnah/go-md2rich/internal/fileutil"
	"github.com/alnah/go-md2rich/internal/hints"
	"github.com/alnah/go-md2rich/internal/vault"
)

// hintFor returns an actionable hint for err, or "".
// s may be nil when the failure happened before config was loaded.
func hintFor(err error, cmd string, s *settings) string {
	switch {
	case errors.Is(err, clipboard.ErrRichUnsupported), errors.Is(err, clipboard.ErrWrite):
		return hints.ForClipboard(cmd == cmdCopy)
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if s != nil && !fileutil.IsFilePath(s.configName) {
			searched = config.SearchPaths(s.configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, md2rich.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, md2rich.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.TemplateNames())
	case errors.Is(err, ErrStdinName):
		return hints.ForStdinName()
	case errors.Is(err, md2rich.ErrNoVault), errors.Is(err, vault.ErrInvalidRoot):
		return hints.ForVault()
	case errors.Is(err, ErrWriteExport):
		return hints.ForOutputDirectory()
	}
	return ""
}
