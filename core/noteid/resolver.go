// ABOUTME: Resolves the canonical note identifier from a page location
// ABOUTME: Only /explore/{id} paths identify a note page; anything else is not an error

package noteid

import (
	"net/url"
	"regexp"
)

// notePathPattern matches note detail pages. Note ids are 24 hex
// characters.
var notePathPattern = regexp.MustCompile(`^/explore/([0-9a-fA-F]{24})/?$`)

// Resolve extracts the note id from a location path.
// It returns ok=false when the path is not a recognized note page;
// callers treat that as "no current note", not as a failure.
func Resolve(locationPath string) (string, bool) {
	m := notePathPattern.FindStringSubmatch(locationPath)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ResolveURL extracts the note id from a full page URL
func ResolveURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return Resolve(u.Path)
}
