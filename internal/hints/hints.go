// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alnah/go-md2rich/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// Platform and lookPath are swapped by tests.
var (
	Platform = runtime.GOOS
	lookPath = exec.LookPath
)

// ForClipboard returns hints for clipboard write errors.
// With rich set, it also checks for the tools an HTML copy needs.
func ForClipboard(rich bool) string {
	if IsInContainer() {
		return format("containers have no clipboard; use export instead")
	}

	var hints []string
	switch Platform {
	case "linux", "freebsd", "openbsd", "netbsd":
		if os.Getenv("WAYLAND_DISPLAY") == "" && os.Getenv("DISPLAY") == "" {
			hints = append(hints, "no display found; set WAYLAND_DISPLAY or DISPLAY")
		}
		if rich && !hasAny("wl-copy", "xclip") {
			hints = append(hints, "install wl-clipboard or xclip for rich copy")
		}
	case "darwin":
		if rich && !hasAny("osascript") {
			hints = append(hints, "osascript is required for rich copy")
		}
	default:
		if rich {
			hints = append(hints, "rich copy is unsupported here; use copy-md or export")
		}
	}
	return formatHints(hints)
}

func hasAny(tools ...string) bool {
	for _, tool := range tools {
		if _, err := lookPath(tool); err == nil {
			return true
		}
	}
	return false
}

// ForVault returns hints for notes with image embeds and no vault.
func ForVault() string {
	return format("use --vault /path/to/vault or run inside a folder containing .obsidian")
}

// ForStdinName returns the hint shown when piped input has no --name.
func ForStdinName() string {
	return format("use --name to title notes read from stdin")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2rich/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2rich") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a .html file path with --template")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a .html file path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
