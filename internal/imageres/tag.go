package imageres

import (
	"encoding/base64"
	"fmt"
	"html"
)

// Tag builds the inline <img> element for image data.
// The alt text is attribute-escaped; the data is base64 encoded.
func Tag(mimeType string, data []byte, alt string) string {
	return fmt.Sprintf(`<img src="data:%s;base64,%s" alt="%s" style="max-width:100%%;">`,
		mimeType, base64.StdEncoding.EncodeToString(data), html.EscapeString(alt))
}

// Diagnostic placeholders inserted in place of failed resolutions.
// Each carries the original token for debugging.

// NotFound reports that no vault file matched token.
func NotFound(token string) string {
	return "[image not found: " + token + "]"
}

// TooLarge reports that the matched file exceeds the size ceiling.
func TooLarge(token string) string {
	return "[image too large: " + token + "]"
}

// ProcessingError reports any other failure while resolving token.
func ProcessingError(token string) string {
	return "[image processing error: " + token + "]"
}
