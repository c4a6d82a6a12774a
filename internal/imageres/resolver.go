package imageres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2rich/internal/vault"
)

// DefaultMaxSize is the size ceiling for internal images (10 MiB).
const DefaultMaxSize int64 = 10 << 20

// ExternalPrefix is the scheme prefix of external image URLs.
const ExternalPrefix = "file:///"

// Sentinel errors surfaced in logs; callers only ever see diagnostics.
var (
	ErrNoVault   = errors.New("no vault configured")
	ErrTooLarge  = errors.New("image exceeds size limit")
	ErrRecovered = errors.New("image resolution panicked")
)

// Resolution pairs an original token with its replacement fragment.
type Resolution struct {
	Original    string // exact text to replace in the buffer
	Replacement string // <img> tag or diagnostic placeholder
	Err         error  // cause when Replacement is a diagnostic, for logging
}

// Resolver resolves image references to inline data.
// The zero value has no vault, reads external files with os.ReadFile and
// enforces DefaultMaxSize.
type Resolver struct {
	Vault        vault.Vault
	ReadExternal func(path string) ([]byte, error)
	MaxSize      int64 // internal images only; <= 0 means DefaultMaxSize
	Concurrency  int   // max parallel resolutions; <= 0 means unbounded
	Logger       *slog.Logger

	// pathSeparator is the native separator; a field so tests can
	// exercise the backslash translation on any platform.
	pathSeparator byte
}

// ResolveInternal resolves a vault image token (the text inside ![[...]]).
func (r *Resolver) ResolveInternal(ctx context.Context, token string) (res Resolution) {
	res.Original = "![[" + token + "]]"
	defer r.recoverInto(&res, token)

	if err := ctx.Err(); err != nil {
		return r.failed(res, ProcessingError(token), err)
	}
	if r.Vault == nil {
		return r.failed(res, ProcessingError(token), ErrNoVault)
	}

	files, err := r.Vault.Files()
	if err != nil {
		return r.failed(res, ProcessingError(token), err)
	}
	f, ok := vault.Find(files, token)
	if !ok {
		return r.failed(res, NotFound(token), os.ErrNotExist)
	}

	info, err := r.Vault.Stat(f)
	if err != nil {
		return r.failed(res, ProcessingError(token), err)
	}
	if info.Size > r.maxSize() {
		return r.failed(res, TooLarge(token),
			fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTooLarge, f.Path, info.Size, r.maxSize()))
	}

	data, err := r.Vault.ReadFile(f)
	if err != nil {
		return r.failed(res, ProcessingError(token), err)
	}

	res.Replacement = Tag(MIMEType(f.Name), data, token)
	return res
}

// ResolveExternal resolves an external image. match is the full markdown
// image text to replace; url is its file:/// target. No size ceiling
// applies on this path.
func (r *Resolver) ResolveExternal(ctx context.Context, match, url string) (res Resolution) {
	res.Original = match
	defer r.recoverInto(&res, url)

	if err := ctx.Err(); err != nil {
		return r.failed(res, ProcessingError(url), err)
	}

	p := r.localPath(url)
	data, err := r.readExternal(p)
	if err != nil {
		return r.failed(res, ProcessingError(url), err)
	}

	res.Replacement = Tag(MIMEType(p), data, url)
	return res
}

// localPath strips the scheme from a file:/// URL and converts it to a
// native path. Drive-letter platforms read C:\...; elsewhere the path
// stays rooted at /.
func (r *Resolver) localPath(url string) string {
	p := strings.TrimPrefix(url, ExternalPrefix)
	if r.separator() == '\\' {
		return strings.ReplaceAll(p, "/", `\`)
	}
	return "/" + p
}

func (r *Resolver) separator() byte {
	if r.pathSeparator != 0 {
		return r.pathSeparator
	}
	return filepath.Separator
}

func (r *Resolver) readExternal(p string) ([]byte, error) {
	if r.ReadExternal != nil {
		return r.ReadExternal(p)
	}
	return os.ReadFile(p) // #nosec G304 -- path comes from the author's own note
}

func (r *Resolver) maxSize() int64 {
	if r.MaxSize > 0 {
		return r.MaxSize
	}
	return DefaultMaxSize
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// failed records a diagnostic replacement and logs its cause.
func (r *Resolver) failed(res Resolution, diagnostic string, err error) Resolution {
	res.Replacement = diagnostic
	res.Err = err
	r.logger().Warn("image unresolved", "image", res.Original, "err", err)
	return res
}

// recoverInto converts a panic in a collaborator into a processing error.
func (r *Resolver) recoverInto(res *Resolution, token string) {
	if p := recover(); p != nil {
		*res = r.failed(*res, ProcessingError(token), fmt.Errorf("%w: %v", ErrRecovered, p))
	}
}
