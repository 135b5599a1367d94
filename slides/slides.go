// Package slides locates slide parts of a presentation package and recovers
// their display order.
package slides

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/maruel/natural"

	"slidefx/archive"
)

// Dir is where presentation generators put slide parts.
const Dir = "ppt/slides/"

// only ordered slide parts, layouts, masters, notes and relationships never match
var slideName = regexp.MustCompile(`^ppt/slides/slide([0-9]+)\.xml$`)

// Slide is a slide part in the package.
type Slide struct {
	Path    string
	Ordinal int
}

// Lister is satisfied by archive.Package.
type Lister interface {
	Walk(prefix string, walkFn archive.WalkFunc) error
}

// Find returns slide parts sorted by ordinal. Package without slides is not
// an error, result is empty.
func Find(pkg Lister) ([]Slide, error) {
	var found []Slide
	err := pkg.Walk(Dir, func(name string) error {
		if s, ok := Parse(name); ok {
			found = append(found, s)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list slides: %w", err)
	}
	Sort(found)
	return found, nil
}

// Parse checks if name follows slide naming convention and extracts ordinal.
func Parse(name string) (Slide, bool) {
	m := slideName.FindStringSubmatch(name)
	if m == nil {
		return Slide{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// too many digits, there is no way to order it
		return Slide{}, false
	}
	if n < 1 {
		// slide numbering starts with 1
		return Slide{}, false
	}
	return Slide{Path: name, Ordinal: n}, true
}

// Sort orders slides by numeric ordinal. Generators never produce two parts
// with the same ordinal ("slide1.xml" and "slide01.xml"), should it happen
// order is natural order of names.
func Sort(s []Slide) {
	slices.SortFunc(s, func(a, b Slide) int {
		if c := cmp.Compare(a.Ordinal, b.Ordinal); c != 0 {
			return c
		}
		switch {
		case natural.Less(a.Path, b.Path):
			return -1
		case natural.Less(b.Path, a.Path):
			return 1
		}
		// "01" and "1" are the same for natural order
		return cmp.Compare(a.Path, b.Path)
	})
}

// Paths returns slide paths in the same order.
func Paths(s []Slide) []string {
	out := make([]string, 0, len(s))
	for _, sl := range s {
		out = append(out, sl.Path)
	}
	return out
}
