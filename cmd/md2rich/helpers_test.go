package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2rich/internal/clipboard"
)

// testEnv is an Environment wired to buffers and an in-memory clipboard.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	clip   *clipboard.Memory
}

func newTestEnv(stdin string, terminal bool) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		clip:   &clipboard.Memory{},
	}
	te.Environment = &Environment{
		Now:          time.Now,
		Stdin:        strings.NewReader(stdin),
		Stdout:       te.stdout,
		Stderr:       te.stderr,
		IsTerminal:   func() bool { return terminal },
		NewClipboard: func(*slog.Logger) clipboard.Clipboard { return te.clip },
	}
	return te
}

// failingClipboard rejects every write with err.
type failingClipboard struct{ err error }

func (f failingClipboard) WriteRich(context.Context, string, string) error { return f.err }
func (f failingClipboard) WriteText(context.Context, string) error         { return f.err }

// testPNG is a minimal PNG header, enough for the MIME mapping.
var testPNG = []byte("\x89PNG\r\n\x1a\n")

// writeVault creates a vault with one note and one image and returns the
// note path.
func writeVault(t *testing.T, markdown string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{".obsidian", "attachments", "notes"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "attachments", "pic.png"), testPNG, 0o644); err != nil {
		t.Fatal(err)
	}
	note := filepath.Join(root, "notes", "note.md")
	if err := os.WriteFile(note, []byte(markdown), 0o644); err != nil {
		t.Fatal(err)
	}
	return note
}

// noteMarkdown exercises headings, an embed and inline formatting.
const noteMarkdown = "# Trip Report\n![[pic.png]]\nWe **made** it.\nLast line"

// writeFile writes content to dir/name.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
