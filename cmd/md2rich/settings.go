package main

import (
	"fmt"
	"io"
	"log/slog"

	md2rich "github.com/alnah/go-md2rich"
	"github.com/alnah/go-md2rich/internal/config"
	"github.com/alnah/go-md2rich/internal/vault"
)

// settings is the effective configuration of one command run.
type settings struct {
	cfg        *config.Config
	configPath string // empty when defaults were used
	configName string // name or path that was looked up, for hints
}

// loadSettings resolves configuration in priority order:
// CLI flags > env vars > config file > defaults.
// merge applies the command's flags and may be nil.
func loadSettings(common commonFlags, stderr io.Writer, merge func(*config.Config) error) (*settings, error) {
	env := loadEnvConfig(stderr)
	warnUnknownEnvVars(stderr)

	s := &settings{configName: common.config}
	if s.configName == "" {
		s.configName = env.ConfigPath
	}

	var err error
	if s.configName != "" {
		s.cfg, s.configPath, err = config.Load(s.configName)
	} else {
		s.cfg, s.configPath, err = config.LoadDefault()
	}
	if err != nil {
		return s, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(env, s.cfg)
	if merge != nil {
		if err := merge(s.cfg); err != nil {
			return s, err
		}
	}
	if err := s.cfg.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(f *noteFlags, cfg *config.Config) error {
	c := f.conversion
	if c.vault != "" {
		cfg.Vault.Root = c.vault
	}
	if c.maxImageSize != "" {
		size, err := config.ParseByteSize(c.maxImageSize)
		if err != nil {
			return fmt.Errorf("--max-image-size: %w", err)
		}
		cfg.Images.MaxSize = size
	}
	if f.changed != nil && f.changed("concurrency") {
		cfg.Images.Concurrency = c.concurrency
	}
	if c.maxWidth != "" {
		cfg.Layout.MaxWidth = c.maxWidth
	}
	if c.noCenter {
		cfg.Layout.Center = false
	}
	if c.compact {
		cfg.Output.Compact = true
	}

	e := f.export
	if e.style != "" {
		cfg.Export.Style = e.style
	}
	if e.template != "" {
		cfg.Export.Template = e.template
	}
	if e.assetPath != "" {
		cfg.Assets.BasePath = e.assetPath
	}
	return nil
}

// newLogger returns the command logger: Info by default, Debug with
// --verbose, errors only with --quiet.
func newLogger(w io.Writer, common commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case common.quiet:
		level = slog.LevelError
	case common.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// newConverter builds a converter for a note. The vault is the configured
// root, or the one detected from notePath.
func newConverter(cfg *config.Config, notePath string, logger *slog.Logger) (*md2rich.Converter, error) {
	root := cfg.Vault.Root
	if root == "" {
		detected, err := md2rich.DetectVaultRoot(notePath)
		if err != nil {
			return nil, fmt.Errorf("detecting vault: %w", err)
		}
		root = detected
	}
	v, err := vault.Open(root)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	v.SetLogger(logger)
	logger.Debug("vault", "root", root)

	return md2rich.NewConverter(
		md2rich.WithVault(v),
		md2rich.WithMaxImageSize(int64(cfg.Images.MaxSize)),
		md2rich.WithConcurrency(cfg.Images.Concurrency),
		md2rich.WithLayout(md2rich.Layout{
			MaxWidth: cfg.Layout.MaxWidth,
			Center:   cfg.Layout.Center,
		}),
		md2rich.WithCompact(cfg.Output.Compact),
		md2rich.WithLogger(logger),
		md2rich.WithAssetPath(cfg.Assets.BasePath),
		md2rich.WithStyle(cfg.Export.Style),
		md2rich.WithTemplate(cfg.Export.Template),
	)
}
