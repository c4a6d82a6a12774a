package imageres

import (
	"path"
	"strings"
)

// defaultMIMEType is used for unknown or missing extensions.
const defaultMIMEType = "image/png"

// MIMEType returns the image MIME type for a file name.
// Only the lowercased extension matters; unknown extensions map to image/png.
func MIMEType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return defaultMIMEType
	}
}
