package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	md2rich "github.com/alnah/go-md2rich"
	"github.com/alnah/go-md2rich/internal/fileutil"
)

// stdinArg reads the note from standard input.
const stdinArg = "-"

// note is the document a command works on.
type note struct {
	path     string // empty for stdin
	name     string
	markdown string // selected content
}

// isStdin reports whether the note was piped in.
func (n *note) isStdin() bool { return n.path == "" }

// input returns the library input for the note.
func (n *note) input() md2rich.Input {
	return md2rich.Input{Markdown: n.markdown, Name: n.name}
}

// dir returns the note's directory, or the working directory for stdin.
func (n *note) dir() string {
	if n.isStdin() {
		return "."
	}
	return filepath.Dir(n.path)
}

// vaultProbe is the path vault detection starts from.
func (n *note) vaultProbe() string {
	if n.isStdin() {
		return n.name
	}
	return n.path
}

// lineRange is a 1-based inclusive selection. Zero bounds are open.
type lineRange struct {
	start, end int
}

// parseLineRange parses "a:b", "a:" or ":b".
func parseLineRange(s string) (lineRange, error) {
	if s == "" {
		return lineRange{}, nil
	}
	startStr, endStr, ok := strings.Cut(s, ":")
	if !ok {
		return lineRange{}, fmt.Errorf("%w: %q (want a:b)", ErrInvalidLines, s)
	}

	var r lineRange
	var err error
	if startStr != "" {
		if r.start, err = strconv.Atoi(startStr); err != nil || r.start < 1 {
			return lineRange{}, fmt.Errorf("%w: start %q", ErrInvalidLines, startStr)
		}
	}
	if endStr != "" {
		if r.end, err = strconv.Atoi(endStr); err != nil || r.end < 1 {
			return lineRange{}, fmt.Errorf("%w: end %q", ErrInvalidLines, endStr)
		}
	}
	if r.start > 0 && r.end > 0 && r.end < r.start {
		return lineRange{}, fmt.Errorf("%w: %d:%d ends before it starts", ErrInvalidLines, r.start, r.end)
	}
	return r, nil
}

// apply returns the selected lines of content, clamped to its length.
func (r lineRange) apply(content string) string {
	if r.start == 0 && r.end == 0 {
		return content
	}
	lines := strings.SplitAfter(content, "\n")
	start, end := 1, len(lines)
	if r.start > 0 {
		start = r.start
	}
	if r.end > 0 && r.end < end {
		end = r.end
	}
	if start > end {
		return ""
	}
	return strings.TrimSuffix(strings.Join(lines[start-1:end], ""), "\n")
}

// readNote loads the note named by args. An empty selection falls back to
// the whole note.
func readNote(args []string, f sourceFlags, stdin io.Reader) (*note, error) {
	if len(args) == 0 {
		return nil, ErrNoNote
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected one note, got %d", ErrUsage, len(args))
	}

	selection, err := parseLineRange(f.lines)
	if err != nil {
		return nil, err
	}

	n := &note{name: f.name}
	var content []byte
	if args[0] == stdinArg {
		if n.name == "" {
			return nil, ErrStdinName
		}
		if content, err = io.ReadAll(stdin); err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadNote, err)
		}
	} else {
		n.path = args[0]
		if n.name == "" {
			n.name = fileutil.BaseName(n.path)
		}
		if content, err = os.ReadFile(n.path); err != nil { // #nosec G304 -- user-provided note path
			return nil, fmt.Errorf("%w: %w", ErrReadNote, err)
		}
	}

	full := string(content)
	n.markdown = selection.apply(full)
	if n.markdown == "" {
		n.markdown = full
	}
	return n, nil
}

// reload re-reads a file-backed note with the same selection.
func (n *note) reload(f sourceFlags) error {
	if n.isStdin() {
		return errors.New("cannot reload stdin")
	}
	fresh, err := readNote([]string{n.path}, f, nil)
	if err != nil {
		return err
	}
	n.markdown = fresh.markdown
	return nil
}
