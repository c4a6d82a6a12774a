package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2rich/internal/config"
)

// envPrefix starts every md2rich environment variable.
const envPrefix = "MD2RICH_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string          // MD2RICH_CONFIG: config file name or path
	Vault        string          // MD2RICH_VAULT: vault directory
	OutputDir    string          // MD2RICH_OUTPUT_DIR: export directory
	MaxImageSize config.ByteSize // MD2RICH_MAX_IMAGE_SIZE: vault image ceiling
	Concurrency  *int            // MD2RICH_CONCURRENCY: parallel image reads, 0 = unbounded
	Style        string          // MD2RICH_STYLE: export style
}

// knownEnvVars lists valid MD2RICH_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2RICH_CONFIG":         true,
	"MD2RICH_VAULT":          true,
	"MD2RICH_OUTPUT_DIR":     true,
	"MD2RICH_MAX_IMAGE_SIZE": true,
	"MD2RICH_CONCURRENCY":    true,
	"MD2RICH_STYLE":          true,
	"MD2RICH_CONTAINER":      true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Values that do not parse are dropped with a warning on w.
func loadEnvConfig(w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2RICH_CONFIG"),
		Vault:      os.Getenv("MD2RICH_VAULT"),
		OutputDir:  os.Getenv("MD2RICH_OUTPUT_DIR"),
		Style:      os.Getenv("MD2RICH_STYLE"),
	}

	if v := os.Getenv("MD2RICH_MAX_IMAGE_SIZE"); v != "" {
		if size, err := config.ParseByteSize(v); err == nil && size > 0 {
			cfg.MaxImageSize = size
		} else {
			fmt.Fprintf(w, "warning: ignoring MD2RICH_MAX_IMAGE_SIZE=%q (want a size such as 10MiB)\n", v)
		}
	}

	if v := os.Getenv("MD2RICH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Concurrency = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring MD2RICH_CONCURRENCY=%q (want a non-negative integer)\n", v)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2RICH_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the file, giving:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Vault != "" {
		cfg.Vault.Root = env.Vault
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.MaxImageSize > 0 {
		cfg.Images.MaxSize = env.MaxImageSize
	}
	if env.Concurrency != nil {
		cfg.Images.Concurrency = *env.Concurrency
	}
	if env.Style != "" {
		cfg.Export.Style = env.Style
	}
}
