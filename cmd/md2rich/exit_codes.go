package main

import (
	"errors"
	"os"

	md2rich "github.com/alnah/go-md2rich"
	"github.com/alnah/go-md2rich/internal/clipboard"
	"github.com/alnah/go-md2rich/internal/config"
	"github.com/alnah/go-md2rich/internal/fileutil"
	"github.com/alnah/go-md2rich/internal/vault"
)

// Exit codes for md2rich CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful command
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied
	ExitClipboard = 4 // Clipboard unavailable or rejected the write
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, errExportCancelled) {
		return ExitSuccess
	}

	// Clipboard errors (exit 4)
	if errors.Is(err, clipboard.ErrRichUnsupported) ||
		errors.Is(err, clipboard.ErrWrite) {
		return ExitClipboard
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoNote) ||
		errors.Is(err, ErrStdinName) ||
		errors.Is(err, ErrInvalidLines) ||
		errors.Is(err, ErrWatchStdin) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, vault.ErrInvalidRoot) ||
		errors.Is(err, md2rich.ErrEmptyMarkdown) ||
		errors.Is(err, md2rich.ErrNoVault) ||
		errors.Is(err, md2rich.ErrInvalidLayout) ||
		errors.Is(err, md2rich.ErrInvalidConcurrency) ||
		errors.Is(err, md2rich.ErrInvalidMaxImageSize) ||
		errors.Is(err, md2rich.ErrStyleNotFound) ||
		errors.Is(err, md2rich.ErrTemplateNotFound) ||
		errors.Is(err, md2rich.ErrInvalidAssetPath) ||
		errors.Is(err, md2rich.ErrTemplateRender) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadNote) ||
		errors.Is(err, ErrWriteExport) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	return ExitGeneral
}
