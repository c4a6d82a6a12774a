package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/alnah/go-md2rich/internal/clipboard"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether Stdin is interactive; the export
	// directory prompt only appears when it is.
	IsTerminal func() bool

	// NewClipboard builds the clipboard for a command run.
	NewClipboard func(logger *slog.Logger) clipboard.Clipboard
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- fd fits in int
		},
		NewClipboard: func(logger *slog.Logger) clipboard.Clipboard {
			return clipboard.NewSystem(logger)
		},
	}
}
