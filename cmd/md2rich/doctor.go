package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2rich/internal/clipboard"
	"github.com/alnah/go-md2rich/internal/config"
	"github.com/alnah/go-md2rich/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Clipboard clipboardInfo `json:"clipboard"`
	Config    configInfo    `json:"config"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// clipboardInfo holds clipboard backend detection results.
type clipboardInfo struct {
	Text        bool   `json:"text"`
	RichBackend string `json:"rich_backend,omitempty"`
	Display     string `json:"display,omitempty"`
}

// configInfo holds the default config lookup result.
type configInfo struct {
	Path  string `json:"path,omitempty"`
	Valid bool   `json:"valid"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	jsonOutput := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() { printCommandUsage(env.Stderr, "doctor") }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	result := runDoctor(clipboard.NewSystem(nil))

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(sys *clipboard.System) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkEnvironment(result)
	checkClipboard(result, sys)
	checkConfig(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkClipboard detects plain and rich clipboard support.
func checkClipboard(result *doctorResult, sys *clipboard.System) {
	result.Clipboard.Text = clipboard.TextSupported()
	result.Clipboard.RichBackend = string(sys.RichBackend())
	if d := sys.Getenv("WAYLAND_DISPLAY"); d != "" {
		result.Clipboard.Display = "wayland:" + d
	} else if d := sys.Getenv("DISPLAY"); d != "" {
		result.Clipboard.Display = "x11:" + d
	}

	switch {
	case !result.Clipboard.Text && result.Clipboard.RichBackend == "":
		result.Errors = append(result.Errors, "No clipboard backend found; only export and render will work")
	case result.Clipboard.RichBackend == "":
		result.Warnings = append(result.Warnings, "No rich clipboard helper; copy will fail, copy-md still works")
	}
	if result.Env.Container {
		result.Warnings = append(result.Warnings, "Container detected; the host clipboard is usually out of reach")
	}
}

// checkConfig loads the default config the way note commands would.
func checkConfig(result *doctorResult) {
	_, path, err := config.LoadDefault()
	result.Config.Path = path
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config invalid: %v", err))
		return
	}
	result.Config.Valid = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("MD2RICH_CONTAINER") == "1" {
		return true, "MD2RICH_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "md2rich-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2rich doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Clipboard")
	if r.Clipboard.Text {
		fmt.Fprintln(w, "  [OK] Plain text: supported")
	} else {
		fmt.Fprintln(w, "  [ERROR] Plain text: unsupported")
	}
	if r.Clipboard.RichBackend != "" {
		fmt.Fprintf(w, "  [OK] Rich HTML: %s\n", r.Clipboard.RichBackend)
	} else {
		fmt.Fprintln(w, "  [WARN] Rich HTML: no helper found")
	}
	if r.Clipboard.Display != "" {
		fmt.Fprintf(w, "  [OK] Display: %s\n", r.Clipboard.Display)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case !r.Config.Valid:
		fmt.Fprintln(w, "  [ERROR] Default config: invalid")
	case r.Config.Path != "":
		fmt.Fprintf(w, "  [OK] Loaded from %s\n", r.Config.Path)
	default:
		fmt.Fprintln(w, "  [OK] Using defaults")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
