// Package clipboard writes conversion results to the system clipboard.
//
// Plain text goes through github.com/atotto/clipboard. Rich (HTML) content
// needs a platform helper: wl-copy on Wayland, xclip on X11 and osascript on
// macOS. When no helper is available WriteRich fails with ErrRichUnsupported
// rather than silently copying text only.
package clipboard

import (
	"context"
	"errors"
	"sync"
)

// Sentinel errors.
var (
	ErrRichUnsupported = errors.New("rich clipboard not supported on this system")
	ErrWrite           = errors.New("clipboard write failed")
)

// Clipboard receives conversion output.
type Clipboard interface {
	// WriteRich places html and its plain-text fallback on the clipboard.
	WriteRich(ctx context.Context, html, plain string) error
	// WriteText places text on the clipboard.
	WriteText(ctx context.Context, text string) error
}

// Memory is an in-process Clipboard. Safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	html  string
	plain string
	rich  bool
}

// WriteRich implements Clipboard.
func (m *Memory) WriteRich(ctx context.Context, html, plain string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.html, m.plain, m.rich = html, plain, true
	return nil
}

// WriteText implements Clipboard.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.html, m.plain, m.rich = "", text, false
	return nil
}

// Contents returns the last write. rich reports whether it carried HTML.
func (m *Memory) Contents() (html, plain string, rich bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.html, m.plain, m.rich
}
