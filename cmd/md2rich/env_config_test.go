package main

// Notes:
// - These tests use t.Setenv and therefore cannot run in parallel.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2rich/internal/config"
)

func clearMD2RichEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading MD2RICH_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	clearMD2RichEnv(t)
	t.Setenv("MD2RICH_CONFIG", "work")
	t.Setenv("MD2RICH_VAULT", "/notes")
	t.Setenv("MD2RICH_OUTPUT_DIR", "/tmp/out")
	t.Setenv("MD2RICH_MAX_IMAGE_SIZE", "2MiB")
	t.Setenv("MD2RICH_CONCURRENCY", "0")
	t.Setenv("MD2RICH_STYLE", "plain")

	var warn bytes.Buffer
	env := loadEnvConfig(&warn)

	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %q", warn.String())
	}
	if env.ConfigPath != "work" || env.Vault != "/notes" || env.OutputDir != "/tmp/out" || env.Style != "plain" {
		t.Errorf("string fields = %+v", env)
	}
	if env.MaxImageSize != config.ByteSize(2<<20) {
		t.Errorf("MaxImageSize = %d, want %d", env.MaxImageSize, config.ByteSize(2<<20))
	}
	if env.Concurrency == nil || *env.Concurrency != 0 {
		t.Errorf("Concurrency = %v, want pointer to 0", env.Concurrency)
	}
}

func TestLoadEnvConfig_InvalidValues(t *testing.T) {
	clearMD2RichEnv(t)
	t.Setenv("MD2RICH_MAX_IMAGE_SIZE", "huge")
	t.Setenv("MD2RICH_CONCURRENCY", "-2")

	var warn bytes.Buffer
	env := loadEnvConfig(&warn)

	if env.MaxImageSize != 0 {
		t.Errorf("MaxImageSize = %d, want 0", env.MaxImageSize)
	}
	if env.Concurrency != nil {
		t.Errorf("Concurrency = %d, want nil", *env.Concurrency)
	}
	for _, want := range []string{"MD2RICH_MAX_IMAGE_SIZE", "MD2RICH_CONCURRENCY"} {
		if !strings.Contains(warn.String(), want) {
			t.Errorf("warnings should mention %s, got %q", want, warn.String())
		}
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	clearMD2RichEnv(t)
	t.Setenv("MD2RICH_VALT", "/typo")
	t.Setenv("MD2RICH_STYLE", "plain")

	var warn bytes.Buffer
	warnUnknownEnvVars(&warn)

	if !strings.Contains(warn.String(), "MD2RICH_VALT") {
		t.Errorf("expected warning for MD2RICH_VALT, got %q", warn.String())
	}
	if strings.Contains(warn.String(), "MD2RICH_STYLE") {
		t.Errorf("known variable should not be reported, got %q", warn.String())
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env values override the file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	zero := 0
	cfg := config.DefaultConfig()
	cfg.Vault.Root = "/from/file"
	cfg.Images.Concurrency = 4
	cfg.Export.Style = "default"

	applyEnvConfig(&envConfig{
		Vault:        "/from/env",
		MaxImageSize: 1 << 20,
		Concurrency:  &zero,
	}, cfg)

	if cfg.Vault.Root != "/from/env" {
		t.Errorf("Vault.Root = %q, want /from/env", cfg.Vault.Root)
	}
	if cfg.Images.MaxSize != 1<<20 {
		t.Errorf("Images.MaxSize = %d, want %d", cfg.Images.MaxSize, 1<<20)
	}
	if cfg.Images.Concurrency != 0 {
		t.Errorf("Images.Concurrency = %d, want 0", cfg.Images.Concurrency)
	}
	if cfg.Export.Style != "default" {
		t.Errorf("unset env var changed Export.Style to %q", cfg.Export.Style)
	}
}
