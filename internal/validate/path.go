// path.go implements the relative path predicate.
//
// Paths are the most common slot value after plain tokens, and the most
// abused: an absolute path or a ".." component walks out of whatever
// directory the command was meant to touch, and a leading "-" turns the path
// into an option for most tools.

package validate

import (
	"path/filepath"
	"strings"
)

// RelPath accepts a relative path that stays below the working directory.
//
// Validation rules:
//   - Empty values rejected
//   - Leading "-" rejected (would be parsed as an option)
//   - Absolute paths rejected, including Windows volume and UNC forms
//   - Any ".." component rejected, before or after cleaning
//   - Backslashes are treated as separators so "a\..\b" is caught on Unix too
func RelPath(v string) bool {
	if v == "" || strings.HasPrefix(v, "-") {
		return false
	}

	p := strings.ReplaceAll(v, "\\", "/")
	if strings.HasPrefix(p, "/") || filepath.IsAbs(v) || filepath.VolumeName(v) != "" {
		return false
	}
	if len(p) >= 2 && p[1] == ':' {
		return false
	}

	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return false
		}
	}

	clean := filepath.ToSlash(filepath.Clean(p))
	return clean != ".." && !strings.HasPrefix(clean, "../")
}
