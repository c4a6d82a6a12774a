package vault

import (
	"os"
	"path/filepath"
)

// ConfigDirName marks the root of a vault.
const ConfigDirName = ".obsidian"

// DetectRoot returns the vault root for a note: the nearest ancestor
// directory holding a ConfigDirName directory, or the note's own directory
// when none is found.
func DetectRoot(notePath string) (string, error) {
	abs, err := filepath.Abs(notePath)
	if err != nil {
		return "", err
	}
	start := filepath.Dir(abs)
	for dir := start; ; {
		if info, err := os.Stat(filepath.Join(dir, ConfigDirName)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}
