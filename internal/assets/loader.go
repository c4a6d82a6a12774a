package assets

import (
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "document"
)

// AssetLoader loads CSS styles and HTML page templates by name.
type AssetLoader interface {
	// LoadStyle loads a style by name, without the .css extension.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name, without the .html extension.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects empty names and names containing '/', '\' or '.'.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
