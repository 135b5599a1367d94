package archive

import (
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in the package
// visited by Walk. If an error is returned, processing stops.
type WalkFunc func(name string) error

// Walk walks all files (directory entries are skipped) in the package which
// names start with prefix, calling walkFn for each item in archive order.
func (p *Package) Walk(prefix string, walkFn WalkFunc) error {
	for _, e := range p.entries {
		name := e.header.Name
		if isDir(name) || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(name); err != nil {
			return err
		}
	}
	return nil
}

func isDir(name string) bool {
	return strings.HasSuffix(name, "/")
}

// isSafePath returns false for entry names which could escape extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
