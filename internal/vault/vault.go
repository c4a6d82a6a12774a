package vault

import (
	"errors"
	"strings"
)

// Sentinel errors for vault operations.
var (
	ErrInvalidRoot = errors.New("invalid vault root")
	ErrNotInVault  = errors.New("file not in vault")
)

// File identifies a file in the vault.
type File struct {
	Name string // base name, e.g. "diagram.png"
	Path string // vault-relative slash path, e.g. "assets/diagram.png"
}

// Info holds the file metadata the resolver needs.
type Info struct {
	Size int64
}

// Vault is the collaborator contract for internal image lookup.
type Vault interface {
	// Files lists every file in a stable order. Find relies on this order
	// to break ties between files sharing a name.
	Files() ([]File, error)
	// Stat returns metadata without reading content.
	Stat(f File) (Info, error)
	// ReadFile returns the full content of f.
	ReadFile(f File) ([]byte, error)
	// ResourcePath returns the host resource URL for f.
	ResourcePath(f File) (string, error)
}

// TargetName returns the part of an image token matched against file names:
// the text after the last "/", or the whole token when that part is empty.
func TargetName(token string) string {
	if i := strings.LastIndex(token, "/"); i >= 0 && i < len(token)-1 {
		return token[i+1:]
	}
	return token
}

// Find returns the first file whose name contains the token's target name,
// compared case-insensitively. An empty token never matches.
//
// The match is a substring test, not an exact one: "img.png" also matches
// "bigimg.png". Authors and storage often disagree on path prefixes, and
// this is what the notes in the wild were written against.
func Find(files []File, token string) (File, bool) {
	target := strings.ToLower(TargetName(token))
	if target == "" {
		return File{}, false
	}
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.Name), target) {
			return f, true
		}
	}
	return File{}, false
}
