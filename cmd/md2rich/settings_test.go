package main

// Notes:
// - loadSettings reads the working directory and the user config dir, so
//   those tests isolate both with t.Chdir and t.Setenv and run serially.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2rich/internal/config"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	clearMD2RichEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

// ---------------------------------------------------------------------------
// TestLoadSettings - Priority of flags, env and file
// ---------------------------------------------------------------------------

func TestLoadSettings_Defaults(t *testing.T) {
	isolateConfig(t)

	s, err := loadSettings(commonFlags{}, &bytes.Buffer{}, nil)
	if err != nil {
		t.Fatalf("loadSettings() unexpected error: %v", err)
	}
	if s.configPath != "" {
		t.Errorf("configPath = %q, want empty", s.configPath)
	}
	if diff := cmp.Diff(config.DefaultConfig(), s.cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettings_Priority(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "md2rich.yaml")
	yaml := "vault:\n  root: /file\nexport:\n  style: plain\nlayout:\n  maxWidth: 600px\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MD2RICH_VAULT", "/env")
	t.Setenv("MD2RICH_STYLE", "default")

	merge := func(cfg *config.Config) error {
		cfg.Export.Style = "flag"
		return nil
	}
	s, err := loadSettings(commonFlags{config: path}, &bytes.Buffer{}, merge)
	if err != nil {
		t.Fatalf("loadSettings() unexpected error: %v", err)
	}
	if s.configPath != path {
		t.Errorf("configPath = %q, want %q", s.configPath, path)
	}
	if s.cfg.Layout.MaxWidth != "600px" {
		t.Errorf("file value lost: MaxWidth = %q", s.cfg.Layout.MaxWidth)
	}
	if s.cfg.Vault.Root != "/env" {
		t.Errorf("env should override file: Vault.Root = %q", s.cfg.Vault.Root)
	}
	if s.cfg.Export.Style != "flag" {
		t.Errorf("flag should override env: Export.Style = %q", s.cfg.Export.Style)
	}
}

func TestLoadSettings_EnvConfigName(t *testing.T) {
	isolateConfig(t)
	t.Setenv("MD2RICH_CONFIG", "missing")

	s, err := loadSettings(commonFlags{}, &bytes.Buffer{}, nil)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("loadSettings() error = %v, want ErrConfigNotFound", err)
	}
	if s == nil || s.configName != "missing" {
		t.Errorf("settings should carry the looked-up name, got %+v", s)
	}
}

func TestLoadSettings_MergeError(t *testing.T) {
	isolateConfig(t)

	wantErr := errors.New("bad flag")
	_, err := loadSettings(commonFlags{}, &bytes.Buffer{}, func(*config.Config) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("loadSettings() error = %v, want %v", err, wantErr)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI overrides
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Images.Concurrency = 4
	f := &noteFlags{
		conversion: conversionFlags{
			vault:        "/vault",
			maxImageSize: "1MiB",
			concurrency:  0,
			maxWidth:     "50%",
			noCenter:     true,
			compact:      true,
		},
		export: exportFlags{
			style:     "plain",
			template:  "document",
			assetPath: "/assets",
		},
		changed: func(name string) bool { return name == "concurrency" },
	}

	if err := mergeFlags(f, cfg); err != nil {
		t.Fatalf("mergeFlags() unexpected error: %v", err)
	}

	want := config.DefaultConfig()
	want.Vault.Root = "/vault"
	want.Images.MaxSize = 1 << 20
	want.Images.Concurrency = 0
	want.Layout.MaxWidth = "50%"
	want.Layout.Center = false
	want.Output.Compact = true
	want.Export.Style = "plain"
	want.Export.Template = "document"
	want.Assets.BasePath = "/assets"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFlags_UnchangedConcurrency(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Images.Concurrency = 4
	f := &noteFlags{changed: func(string) bool { return false }}

	if err := mergeFlags(f, cfg); err != nil {
		t.Fatalf("mergeFlags() unexpected error: %v", err)
	}
	if cfg.Images.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Images.Concurrency)
	}
}

func TestMergeFlags_BadSize(t *testing.T) {
	t.Parallel()

	f := &noteFlags{conversion: conversionFlags{maxImageSize: "lots"}}
	if err := mergeFlags(f, config.DefaultConfig()); err == nil {
		t.Error("mergeFlags() should reject an unparsable --max-image-size")
	}
}
