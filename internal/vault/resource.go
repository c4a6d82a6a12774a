package vault

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// resourceScheme is the prefix of host resource URLs.
const resourceScheme = "app://local/"

var (
	resourcePrefix = regexp.MustCompile(`^app://[^/]*/`)
	querySuffix    = regexp.MustCompile(`\?.*$`)
)

// resourcePath builds a resource URL for an absolute slash path.
// The modification time goes in the query, as cache busting.
func resourcePath(abs string, mod time.Time) string {
	u := url.URL{Path: strings.TrimPrefix(abs, "/")}
	return resourceScheme + u.EscapedPath() + "?" + strconv.FormatInt(mod.UnixMilli(), 10)
}

// FileURL converts a host resource URL to a file:/// URL.
// The scheme prefix and query suffix are stripped, backslashes become
// slashes and the remainder is percent-decoded. Undecodable input is kept
// as is.
func FileURL(resource string) string {
	p := resourcePrefix.ReplaceAllString(resource, "")
	p = querySuffix.ReplaceAllString(p, "")
	p = strings.ReplaceAll(p, `\`, "/")
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	return "file:///" + strings.TrimPrefix(p, "/")
}
