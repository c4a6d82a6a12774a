package vault

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// FSVault serves a vault from an fs.FS.
// The listing is walked once and cached; the vault is safe for concurrent use.
type FSVault struct {
	fsys   fs.FS
	root   string // absolute directory fsys is rooted at, used by ResourcePath
	logger *slog.Logger

	once  sync.Once
	files []File
	err   error
}

// New creates an FSVault over fsys. root is the absolute directory fsys
// represents; it only feeds ResourcePath.
func New(fsys fs.FS, root string) *FSVault {
	return &FSVault{fsys: fsys, root: root, logger: slog.New(slog.DiscardHandler)}
}

// SetLogger sets the logger that reports entries skipped during listing.
// Call it before the first Files.
func (v *FSVault) SetLogger(l *slog.Logger) {
	if l != nil {
		v.logger = l
	}
}

// Open creates an FSVault rooted at dir on the local filesystem.
// Returns ErrInvalidRoot if dir is not a readable directory.
func Open(dir string) (*FSVault, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, abs)
	}
	return New(os.DirFS(abs), abs), nil
}

// Root returns the absolute vault directory.
func (v *FSVault) Root() string {
	return v.root
}

// Files walks the vault in lexical order, skipping dot-directories
// such as .obsidian, .git and .trash. Unreadable entries below the root
// are skipped with a warning; only an unreadable root fails the listing.
func (v *FSVault) Files() ([]File, error) {
	v.once.Do(func() {
		v.err = fs.WalkDir(v.fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if p == "." {
					return err
				}
				v.logger.Warn("skipping unreadable vault entry", "path", p, "error", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if p != "." && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			v.files = append(v.files, File{Name: d.Name(), Path: p})
			return nil
		})
		if v.err != nil {
			v.err = fmt.Errorf("listing vault: %w", v.err)
		}
	})
	return v.files, v.err
}

// Stat returns the size of f.
func (v *FSVault) Stat(f File) (Info, error) {
	if err := validPath(f.Path); err != nil {
		return Info{}, err
	}
	info, err := fs.Stat(v.fsys, f.Path)
	if err != nil {
		return Info{}, err
	}
	return Info{Size: info.Size()}, nil
}

// ReadFile returns the content of f.
func (v *FSVault) ReadFile(f File) ([]byte, error) {
	if err := validPath(f.Path); err != nil {
		return nil, err
	}
	return fs.ReadFile(v.fsys, f.Path)
}

// ResourcePath returns the host resource URL of f, in the
// app://local/<path>?<mtime> shape FileURL understands.
func (v *FSVault) ResourcePath(f File) (string, error) {
	if err := validPath(f.Path); err != nil {
		return "", err
	}
	info, err := fs.Stat(v.fsys, f.Path)
	if err != nil {
		return "", err
	}
	abs := path.Join(filepath.ToSlash(v.root), f.Path)
	return resourcePath(abs, info.ModTime()), nil
}

// validPath rejects paths fs.FS would refuse anyway, with a clearer error.
func validPath(p string) error {
	if !fs.ValidPath(p) {
		return fmt.Errorf("%w: %q", ErrNotInVault, p)
	}
	return nil
}

// Compile-time interface check.
var _ Vault = (*FSVault)(nil)
