package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoNote         = errors.New("no note specified")
	ErrStdinName      = errors.New("reading a note from stdin requires --name")
	ErrInvalidLines   = errors.New("invalid line range")
	ErrReadNote       = errors.New("failed to read note")
	ErrWriteExport    = errors.New("failed to write export")
	ErrWatchStdin     = errors.New("--watch needs a note file, not stdin")
)

// errExportCancelled ends an export the user declined at the prompt.
var errExportCancelled = errors.New("export cancelled")
