package router

import (
	"regexp"
	"strings"
)

var multiSlash = regexp.MustCompile(`/{2,}`)

// normalizeBase collapses duplicate slashes (keeping the scheme separator
// intact) and guarantees a single trailing slash.
func normalizeBase(base string) string {
	if base == "" {
		return "/"
	}
	var scheme string
	if i := strings.Index(base, "://"); i != -1 {
		scheme, base = base[:i+3], base[i+3:]
	}
	base = multiSlash.ReplaceAllString(base, "/")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return scheme + base
}
