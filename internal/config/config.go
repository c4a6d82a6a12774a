// Package config loads md2rich configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2rich/internal/fileutil"
	"github.com/alnah/go-md2rich/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "md2rich"

// UserDirName is the directory under the user config dir holding configs.
const UserDirName = "go-md2rich"

// Field limits.
const (
	MaxPathLength     = 4096
	MaxNameLength     = 100
	MaxWidthLength    = 20
	MaxImageSizeLimit = 1 << 30 // 1 GiB
	MaxConcurrency    = 256
)

// Config holds all configuration for note conversion.
type Config struct {
	Vault  VaultConfig  `yaml:"vault"`
	Images ImagesConfig `yaml:"images"`
	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
	Export ExportConfig `yaml:"export"`
	Assets AssetsConfig `yaml:"assets"`
}

// VaultConfig locates the vault image embeds resolve against.
type VaultConfig struct {
	Root string `yaml:"root"` // Empty = detect from the note's location
}

// ImagesConfig controls image inlining.
type ImagesConfig struct {
	MaxSize     ByteSize `yaml:"maxSize"`     // Ceiling for vault images (default: 10MiB)
	Concurrency int      `yaml:"concurrency"` // 0 = one goroutine per image
}

// LayoutConfig controls the output container.
type LayoutConfig struct {
	MaxWidth string `yaml:"maxWidth"` // CSS length, empty = unlimited
	Center   bool   `yaml:"center"`   // default: true
}

// OutputConfig defines output options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Export directory (empty = note's directory)
	Compact    bool   `yaml:"compact"`    // Collapse blank-line runs
}

// ExportConfig selects the standalone page assets.
type ExportConfig struct {
	Style    string `yaml:"style"`    // Style name, .css path or CSS (empty = default)
	Template string `yaml:"template"` // Template name or .html path (empty = document)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Images: ImagesConfig{MaxSize: DefaultMaxImageSize},
		Layout: LayoutConfig{Center: true},
	}
}

// Validate checks field lengths and ranges. Called by Load; available to
// callers who build a Config by hand or override fields after loading.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"vault.root", c.Vault.Root, MaxPathLength},
		{"layout.maxWidth", c.Layout.MaxWidth, MaxWidthLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"export.style", c.Export.Style, MaxPathLength},
		{"export.template", c.Export.Template, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Images.MaxSize <= 0 || c.Images.MaxSize > MaxImageSizeLimit {
		return fmt.Errorf("%w: images.maxSize must be between 1B and 1GiB, got %s", ErrInvalidValue, c.Images.MaxSize)
	}
	if c.Images.Concurrency < 0 || c.Images.Concurrency > MaxConcurrency {
		return fmt.Errorf("%w: images.concurrency must be between 0 and %d, got %d", ErrInvalidValue, MaxConcurrency, c.Images.Concurrency)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Load loads configuration from a file path or config name.
// A value containing a path separator is a file path; anything else is a
// name searched in the standard locations. Fields absent from the file keep
// their DefaultConfig values. A missing file is an error.
func Load(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, configPath, nil
}

// LoadDefault loads the DefaultName config when one exists in the standard
// locations, and DefaultConfig otherwise. The returned path is empty when
// no file was used.
func LoadDefault() (*Config, string, error) {
	cfg, path, err := Load(DefaultName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), "", nil
	}
	return cfg, path, err
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: the current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, UserDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}
