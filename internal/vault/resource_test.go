package vault

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFileURL - Resource URL to file URL
// ---------------------------------------------------------------------------

func TestFileURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resource string
		want     string
	}{
		{
			name:     "unix path with query",
			resource: "app://local/home/me/vault/img.png?1700000000000",
			want:     "file:///home/me/vault/img.png",
		},
		{
			name:     "percent encoded",
			resource: "app://local/home/me/my%20vault/%E5%9B%BE.png?1",
			want:     "file:///home/me/my vault/图.png",
		},
		{
			name:     "windows drive with backslashes",
			resource: `app://abc123/C:\Users\me\img.png?5`,
			want:     "file:///C:/Users/me/img.png",
		},
		{
			name:     "invalid escape kept",
			resource: "app://local/tmp/100%.png",
			want:     "file:///tmp/100%.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FileURL(tt.resource); got != tt.want {
				t.Errorf("FileURL(%q) = %q, want %q", tt.resource, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDetectRoot - Vault root discovery
// ---------------------------------------------------------------------------

func TestDetectRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	notes := filepath.Join(root, "notes", "daily")
	if err := os.MkdirAll(notes, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, ConfigDirName), 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := DetectRoot(filepath.Join(notes, "today.md"))
	if err != nil {
		t.Fatalf("DetectRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("DetectRoot() = %q, want %q", got, root)
	}
}

func TestDetectRoot_FallsBackToNoteDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := DetectRoot(filepath.Join(dir, "note.md"))
	if err != nil {
		t.Fatalf("DetectRoot() error = %v", err)
	}
	if got != dir {
		t.Errorf("DetectRoot() = %q, want %q", got, dir)
	}
}
