package workspace

import (
	"path/filepath"
	"strings"
)

// matchGlob matches a slash-separated path against a pattern that may use
// "**" to match zero or more path segments, in addition to the single-
// segment wildcards filepath.Match already supports. No example repo in the
// corpus imports a doublestar-style glob library, so "**" is handled here
// by splitting on it and delegating each segment-group to filepath.Match.
func matchGlob(pattern, path string) (bool, error) {
	if !strings.Contains(pattern, "**") {
		return filepath.Match(pattern, path)
	}

	parts := strings.Split(pattern, "**")
	// A pattern like "a/**/b" splits into "a/" and "/b", trimmed to prefix
	// "a" and suffix "b"; "**/*.ts" gives prefix "" and suffix "*.ts".
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(strings.Join(parts[1:], "**"), "/")

	rest := path
	if prefix != "" {
		if !strings.HasPrefix(path, prefix) {
			return false, nil
		}
		rest = strings.TrimPrefix(path, prefix)
		rest = strings.TrimPrefix(rest, "/")
	}

	if suffix == "" {
		return true, nil
	}

	// "**" may match zero or more segments, so try matching suffix against
	// every suffix-aligned tail of the remaining path.
	segments := strings.Split(rest, "/")
	for i := 0; i <= len(segments); i++ {
		candidate := strings.Join(segments[i:], "/")
		ok, err := filepath.Match(suffix, candidate)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
