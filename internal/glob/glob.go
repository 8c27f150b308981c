// Package glob matches template names against the filter given to
// "safercmd ls".
//
// A filter with no glob characters is a name prefix, so "git" lists
// git-log and git-status. A filter with *, ? or [ is a shell-style pattern
// matched against the whole name.
package glob

import (
	"path"
	"strings"
)

// IsPattern reports whether filter uses glob syntax.
func IsPattern(filter string) bool {
	return strings.ContainsAny(filter, `*?[\`)
}

// Match reports whether name passes filter. Returns an error if the pattern
// is malformed. Template names are flat, so * also matches "/".
func Match(filter, name string) (bool, error) {
	if !IsPattern(filter) {
		return strings.HasPrefix(name, filter), nil
	}
	if strings.Contains(name, "/") {
		// path.Match stops * at a slash; names are not paths.
		name = strings.ReplaceAll(name, "/", "\x00")
		filter = strings.ReplaceAll(filter, "/", "\x00")
	}
	return path.Match(filter, name)
}

// Valid reports whether filter can be used with Match.
func Valid(filter string) error {
	if !IsPattern(filter) {
		return nil
	}
	_, err := path.Match(filter, "")
	return err
}
