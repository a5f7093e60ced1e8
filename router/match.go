package router

import (
	"regexp"
	"strings"

	"github.com/en9inerd/go-router/wildcard"
)

// Matches reports whether route, joined with the mount prefix, matches the
// current request path, and returns the captured parameters in pattern
// order. Static routes (no placeholder) are compared by plain string
// equality and never compiled.
//
// Compiled patterns are not cached: a Router serves one request, so each
// route is matched at most once.
func (r *Router) Matches(route string) (bool, []string) {
	pattern := strings.Trim(r.mount+"/"+strings.Trim(route, "/"), "/")
	if !wildcard.Contains(pattern) {
		return pattern == r.path, nil
	}
	re, err := regexp.Compile("^" + wildcard.Compile(pattern) + "$")
	if err != nil {
		return false, nil
	}
	m := re.FindStringSubmatch(r.path)
	if m == nil {
		return false, nil
	}
	return true, m[1:]
}
