package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2rich/internal/fileutil"
	"github.com/alnah/go-md2rich/internal/watch"
)

// exportExt is appended to the note name to form the export file name.
const exportExt = ".html"

// export writes the note as a standalone page, then keeps it current
// with --watch.
func (r *noteRun) export(ctx context.Context) error {
	res, err := r.conv.Document(ctx, r.note.input())
	if err != nil {
		return err
	}

	dir, err := r.exportDir()
	if err != nil {
		return err
	}
	path, err := writeExport(dir, r.note.name, res.HTML)
	if err != nil {
		return err
	}
	r.notify("exported to %s", path)

	if !r.flags.export.watch {
		return nil
	}
	return r.watchExport(ctx, dir)
}

// exportDir picks the output directory: --output, then a prompt on a
// terminal unless --yes, then the configured or note directory.
func (r *noteRun) exportDir() (string, error) {
	if r.flags.export.output != "" {
		return r.flags.export.output, nil
	}

	def := r.set.cfg.Output.DefaultDir
	if def == "" {
		def = r.note.dir()
	}
	if r.flags.export.yes || r.env.IsTerminal == nil || !r.env.IsTerminal() {
		return def, nil
	}
	return promptDirectory(r.env.Stdin, r.env.Stderr, def)
}

// promptDirectory asks for the export directory. An empty answer accepts
// def; "q" or end of input cancels.
func promptDirectory(in io.Reader, out io.Writer, def string) (string, error) {
	fmt.Fprintf(out, "Export directory [%s] (q to cancel): ", def)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(out)
		return "", errExportCancelled
	}

	answer := strings.TrimSpace(line)
	switch {
	case answer == "":
		return def, nil
	case strings.EqualFold(answer, "q"):
		return "", errExportCancelled
	default:
		return answer, nil
	}
}

// writeExport creates dir if needed and writes <name>.html inside it.
func writeExport(dir, name, html string) (string, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteExport, err)
	}
	path := filepath.Join(dir, filepath.Base(name)+exportExt)
	if err := fileutil.WriteFileAtomic(path, html); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteExport, err)
	}
	return path, nil
}

// watchExport re-exports the note on every settled change until ctx is
// cancelled. Failures are logged and the watch continues.
func (r *noteRun) watchExport(ctx context.Context, dir string) error {
	w, err := watch.New(r.note.path, watch.DefaultDebounce, r.logger)
	if err != nil {
		return fmt.Errorf("watching note: %w", err)
	}
	r.notify("watching %s (Ctrl+C to stop)", r.note.path)

	return w.Run(ctx, func(ctx context.Context) {
		if err := r.note.reload(r.flags.source); err != nil {
			r.logger.Error("re-export failed", "note", r.note.path, "error", err)
			return
		}
		res, err := r.conv.Document(ctx, r.note.input())
		if err != nil {
			r.logger.Error("re-export failed", "note", r.note.path, "error", err)
			return
		}
		path, err := writeExport(dir, r.note.name, res.HTML)
		if err != nil {
			r.logger.Error("re-export failed", "note", r.note.path, "error", err)
			return
		}
		r.notify("exported to %s", path)
	})
}
