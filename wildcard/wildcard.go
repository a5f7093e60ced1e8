// Package wildcard translates route patterns containing {name} placeholders
// into regular expression sources with positional capturing groups
package wildcard

import (
	"regexp"
	"strings"
)

// matches a quoted placeholder, i.e. the "\{name\}" left behind by QuoteMeta
var placeholder = regexp.MustCompile(`\\\{[^{}/]+\\\}`)

// Compile converts a route pattern into an unanchored regular expression
// source. Literal portions of the pattern are escaped so metacharacters match
// themselves; each {name} placeholder becomes a capturing group matching one
// or more characters within a single path segment ([^/]+). Placeholder names
// are positional only and may repeat.
//
// Callers are expected to anchor the result (^...$) before matching.
//
// A malformed placeholder (an unterminated or empty brace pair) is not
// rejected: the braces stay escaped and match themselves literally.
func Compile(pattern string) string {
	return placeholder.ReplaceAllString(regexp.QuoteMeta(pattern), `([^/]+)`)
}

// Contains reports whether the pattern has any placeholder syntax at all,
// letting callers skip compilation for purely static routes.
func Contains(pattern string) bool {
	return strings.Contains(pattern, "{")
}
