package inject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// RootTag is qualified name of slide root element.
const RootTag = "p:sld"

var (
	ErrNoClosingMarker = errors.New("root closing tag not found")
	ErrMalformed       = errors.New("slide is not well-formed")
)

// Insert puts markup immediately before closing tag of the root element.
// Text is not reformatted, only closing tag position is looked for. When
// strict is set text is also parsed and root element checked.
func Insert(text, markup string, strict bool) (string, error) {
	if strict {
		if err := checkRoot(text); err != nil {
			return text, err
		}
	}
	pos := rootClose(text, RootTag)
	if pos < 0 {
		return text, ErrNoClosingMarker
	}

	var b strings.Builder
	b.Grow(len(text) + len(markup))
	b.WriteString(text[:pos])
	b.WriteString(markup)
	b.WriteString(text[pos:])
	return b.String(), nil
}

func checkRoot(text string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: no root element", ErrMalformed)
	}
	if root.FullTag() != RootTag {
		return fmt.Errorf("%w: unexpected root element %q", ErrMalformed, root.FullTag())
	}
	return nil
}

// rootClose returns offset of the root closing tag or -1. Document is scanned
// backwards: whitespace, comments and processing instructions may follow the
// root element, anything else means the last end tag is not the root one. Tag
// text appearing in comments or attribute values is never matched.
func rootClose(text, root string) int {
	end := len(text)
	for {
		tail := strings.TrimRight(text[:end], " \t\r\n")
		end = len(tail)
		switch {
		case strings.HasSuffix(tail, "-->"):
			i := strings.LastIndex(tail[:end-3], "<!--")
			if i < 0 {
				return -1
			}
			end = i
		case strings.HasSuffix(tail, "?>"):
			i := strings.LastIndex(tail[:end-2], "<?")
			if i < 0 {
				return -1
			}
			end = i
		case strings.HasSuffix(tail, ">"):
			i := strings.LastIndex(tail, "</")
			if i < 0 {
				return -1
			}
			// "</" Name S? ">"
			if strings.TrimRight(tail[i+2:end-1], " \t\r\n") != root {
				return -1
			}
			return i
		default:
			return -1
		}
	}
}
