package clipboard

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	atotto "github.com/atotto/clipboard"

	"github.com/alnah/go-md2rich/internal/process"
)

// Backend names a rich clipboard helper.
type Backend string

// Rich clipboard helpers, in preference order per platform.
const (
	BackendNone      Backend = ""
	BackendWlCopy    Backend = "wl-copy"
	BackendXclip     Backend = "xclip"
	BackendOsascript Backend = "osascript"
)

// helperWaitDelay bounds Wait after the helper exits. wl-copy and xclip fork
// a server that may keep inherited descriptors open.
const helperWaitDelay = 2 * time.Second

// System writes to the desktop clipboard. The zero value is not usable;
// create one with NewSystem.
type System struct {
	GOOS     string
	Getenv   func(string) string
	LookPath func(string) (string, error)
	// Run executes a helper with stdin as its input.
	Run func(ctx context.Context, stdin []byte, name string, args ...string) error
	// WriteAll writes plain text.
	WriteAll func(string) error
	Logger   *slog.Logger
}

// NewSystem returns a System for the running platform.
func NewSystem(logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &System{
		GOOS:     runtime.GOOS,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		Run:      runHelper,
		WriteAll: atotto.WriteAll,
		Logger:   logger,
	}
}

// TextSupported reports whether plain text writes can work at all.
func TextSupported() bool {
	return !atotto.Unsupported
}

// RichBackend returns the helper WriteRich would use, or BackendNone.
func (s *System) RichBackend() Backend {
	switch s.GOOS {
	case "darwin":
		if s.has(BackendOsascript) {
			return BackendOsascript
		}
	case "linux", "freebsd", "openbsd", "netbsd":
		if s.Getenv("WAYLAND_DISPLAY") != "" && s.has(BackendWlCopy) {
			return BackendWlCopy
		}
		if s.has(BackendXclip) {
			return BackendXclip
		}
		if s.has(BackendWlCopy) {
			return BackendWlCopy
		}
	}
	return BackendNone
}

func (s *System) has(b Backend) bool {
	_, err := s.LookPath(string(b))
	return err == nil
}

// WriteRich implements Clipboard. wl-copy and xclip hold a single target,
// so on those backends the clipboard carries HTML only.
func (s *System) WriteRich(ctx context.Context, html, plain string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	backend := s.RichBackend()
	s.Logger.Debug("rich clipboard backend", "backend", string(backend))

	var err error
	switch backend {
	case BackendWlCopy:
		err = s.Run(ctx, []byte(html), string(backend), "--type", "text/html")
	case BackendXclip:
		err = s.Run(ctx, []byte(html), string(backend), "-selection", "clipboard", "-t", "text/html")
	case BackendOsascript:
		err = s.Run(ctx, []byte(appleScript(html, plain)), string(backend), "-")
	default:
		return ErrRichUnsupported
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, backend, err)
	}
	return nil
}

// WriteText implements Clipboard.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// appleScript sets a clipboard record holding both flavours.
func appleScript(html, plain string) string {
	return fmt.Sprintf("set the clipboard to {text:%s, «class HTML»:«data HTML%s»}\n",
		appleString(plain), strings.ToUpper(hex.EncodeToString([]byte(html))))
}

func appleString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func runHelper(ctx context.Context, stdin []byte, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- name is a fixed Backend
	cmd.Stdin = bytes.NewReader(stdin)
	cmd.WaitDelay = helperWaitDelay
	process.Isolate(cmd)
	return cmd.Run()
}
