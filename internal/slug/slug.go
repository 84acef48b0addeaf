// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything that is not a lowercase letter, digit,
	// whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Make converts a title into a URL-safe slug.
// Example: "Hello World!!" -> "hello-world".
func Make(title string) string {
	s := strings.ToLower(title)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
