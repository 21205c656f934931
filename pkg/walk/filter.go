package walk

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🔌 Filter decides whether a discovered path stays a candidate
type Filter interface {
	// Keep reports whether the path should be processed
	Keep(path string) bool
}

// FilterFunc adapts a plain function to the Filter interface
type FilterFunc func(path string) bool

func (f FilterFunc) Keep(path string) bool {
	return f(path)
}

// 🙈 HiddenSegments excludes any path with a segment starting with "."
func HiddenSegments() Filter {
	return FilterFunc(func(p string) bool {
		for _, segment := range strings.Split(p, "/") {
			if strings.HasPrefix(segment, ".") {
				return false
			}
		}
		return true
	})
}

// 🏗️ ReservedDirs excludes paths under the named directories, wherever
// they appear in the tree. Only directory segments are checked, so a
// plain file sharing a reserved name is still a candidate.
func ReservedDirs(names ...string) Filter {
	reserved := make(map[string]struct{}, len(names))
	for _, name := range names {
		reserved[name] = struct{}{}
	}

	return FilterFunc(func(p string) bool {
		dir := path.Dir(p)
		if dir == "." {
			return true
		}
		for _, segment := range strings.Split(dir, "/") {
			if _, ok := reserved[segment]; ok {
				return false
			}
		}
		return true
	})
}

// 🚫 IgnoreGlobs excludes paths matching any of the given glob patterns
func IgnoreGlobs(patterns ...string) Filter {
	return FilterFunc(func(p string) bool {
		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, p)
			if err != nil {
				continue
			}
			if matched {
				return false
			}
		}
		return true
	})
}
