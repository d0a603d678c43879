// Package pathenc percent-encodes vault note references for request paths.
package pathenc

import (
	"net/url"
	"strings"
)

// NotePath encodes a note reference as a single opaque path segment.
// Slashes inside the reference are encoded too, so the remote API receives
// the whole reference as one unit under its document endpoint.
func NotePath(ref string) string {
	return url.PathEscape(ref)
}

// DirPath encodes a directory reference for the listing endpoint. The
// reference is encoded the same way as a note path and always ends in a
// literal slash; the root (empty reference) needs no encoding at all.
func DirPath(ref string) string {
	if ref == "" {
		return ""
	}
	return url.PathEscape(strings.TrimRight(ref, "/")) + "/"
}
