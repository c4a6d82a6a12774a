package clipboard

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type helperCall struct {
	Name  string
	Args  []string
	Stdin string
}

// fakeSystem returns a System whose helpers are recorded instead of run.
func fakeSystem(goos string, env map[string]string, tools ...string) (*System, *[]helperCall) {
	var mu sync.Mutex
	calls := &[]helperCall{}
	s := &System{
		GOOS:   goos,
		Getenv: func(k string) string { return env[k] },
		LookPath: func(name string) (string, error) {
			for _, tool := range tools {
				if tool == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		},
		Run: func(_ context.Context, stdin []byte, name string, args ...string) error {
			mu.Lock()
			defer mu.Unlock()
			*calls = append(*calls, helperCall{Name: name, Args: args, Stdin: string(stdin)})
			return nil
		},
		WriteAll: func(string) error { return nil },
	}
	s.Logger = NewSystem(nil).Logger
	return s, calls
}

// ---------------------------------------------------------------------------
// TestRichBackend
// ---------------------------------------------------------------------------

func TestRichBackend(t *testing.T) {
	t.Parallel()

	wayland := map[string]string{"WAYLAND_DISPLAY": "wayland-0"}

	tests := []struct {
		name  string
		goos  string
		env   map[string]string
		tools []string
		want  Backend
	}{
		{"wayland prefers wl-copy", "linux", wayland, []string{"wl-copy", "xclip"}, BackendWlCopy},
		{"x11 prefers xclip", "linux", nil, []string{"wl-copy", "xclip"}, BackendXclip},
		{"wl-copy as last resort", "linux", nil, []string{"wl-copy"}, BackendWlCopy},
		{"linux without tools", "linux", wayland, nil, BackendNone},
		{"darwin", "darwin", nil, []string{"osascript"}, BackendOsascript},
		{"windows", "windows", nil, []string{"xclip"}, BackendNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := fakeSystem(tt.goos, tt.env, tt.tools...)
			if got := s.RichBackend(); got != tt.want {
				t.Errorf("RichBackend() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteRich
// ---------------------------------------------------------------------------

func TestWriteRich_Linux(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		tool string
		want helperCall
	}{
		{
			name: "wl-copy",
			env:  map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			tool: "wl-copy",
			want: helperCall{Name: "wl-copy", Args: []string{"--type", "text/html"}, Stdin: "<b>x</b>"},
		},
		{
			name: "xclip",
			tool: "xclip",
			want: helperCall{Name: "xclip", Args: []string{"-selection", "clipboard", "-t", "text/html"}, Stdin: "<b>x</b>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, calls := fakeSystem("linux", tt.env, tt.tool)
			if err := s.WriteRich(context.Background(), "<b>x</b>", "**x**"); err != nil {
				t.Fatalf("WriteRich() error = %v", err)
			}
			if diff := cmp.Diff([]helperCall{tt.want}, *calls); diff != "" {
				t.Errorf("helper calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteRich_Darwin(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("darwin", nil, "osascript")
	if err := s.WriteRich(context.Background(), "<p>hi</p>", `say "hi"`); err != nil {
		t.Fatalf("WriteRich() error = %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one helper call, got %d", len(*calls))
	}

	script := (*calls)[0].Stdin
	wantHex := strings.ToUpper(hex.EncodeToString([]byte("<p>hi</p>")))
	if !strings.Contains(script, "«data HTML"+wantHex+"»") {
		t.Errorf("script missing HTML data: %s", script)
	}
	if !strings.Contains(script, `text:"say \"hi\""`) {
		t.Errorf("script missing escaped plain text: %s", script)
	}
}

func TestWriteRich_Unsupported(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("windows", nil)
	err := s.WriteRich(context.Background(), "<p>x</p>", "x")
	if !errors.Is(err, ErrRichUnsupported) {
		t.Errorf("WriteRich() error = %v, want ErrRichUnsupported", err)
	}
	if len(*calls) != 0 {
		t.Error("no helper should run, and no plain-text fallback either")
	}
}

func TestWriteRich_HelperFailure(t *testing.T) {
	t.Parallel()

	s, _ := fakeSystem("linux", nil, "xclip")
	s.Run = func(context.Context, []byte, string, ...string) error {
		return errors.New("exit status 1")
	}
	if err := s.WriteRich(context.Background(), "<p>x</p>", "x"); !errors.Is(err, ErrWrite) {
		t.Errorf("WriteRich() error = %v, want ErrWrite", err)
	}
}

func TestWriteRich_Cancelled(t *testing.T) {
	t.Parallel()

	s, calls := fakeSystem("linux", nil, "xclip")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.WriteRich(ctx, "<p>x</p>", "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteRich() error = %v, want context.Canceled", err)
	}
	if len(*calls) != 0 {
		t.Error("helper ran after cancellation")
	}
}

// ---------------------------------------------------------------------------
// TestWriteText
// ---------------------------------------------------------------------------

func TestWriteText(t *testing.T) {
	t.Parallel()

	s, _ := fakeSystem("linux", nil)
	var got string
	s.WriteAll = func(text string) error { got = text; return nil }

	if err := s.WriteText(context.Background(), "![[a.png]]"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got != "![[a.png]]" {
		t.Errorf("WriteAll got %q", got)
	}

	s.WriteAll = func(string) error { return errors.New("no xsel") }
	if err := s.WriteText(context.Background(), "x"); !errors.Is(err, ErrWrite) {
		t.Errorf("WriteText() error = %v, want ErrWrite", err)
	}
}

// ---------------------------------------------------------------------------
// TestMemory
// ---------------------------------------------------------------------------

func TestMemory(t *testing.T) {
	t.Parallel()

	var m Memory
	ctx := context.Background()

	if err := m.WriteRich(ctx, "<p>a</p>", "a"); err != nil {
		t.Fatalf("WriteRich() error = %v", err)
	}
	if html, plain, rich := m.Contents(); html != "<p>a</p>" || plain != "a" || !rich {
		t.Errorf("Contents() = %q, %q, %v", html, plain, rich)
	}

	if err := m.WriteText(ctx, "b"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if html, plain, rich := m.Contents(); html != "" || plain != "b" || rich {
		t.Errorf("Contents() = %q, %q, %v", html, plain, rich)
	}

	var _ Clipboard = &m
	var _ Clipboard = NewSystem(nil)
}
