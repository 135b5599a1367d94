package patch

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"testing"
)

const (
	contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`
	presentation = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`
	layout = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld/></p:sldLayout>`
)

type part struct {
	name, content string
}

func slideXML(n int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>Slide %d</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`, n)
}

// deck returns parts of a presentation with n slides. Slides are stored in
// lexical order, the way some generators do it.
func deck(n int) []part {
	parts := []part{
		{"[Content_Types].xml", contentTypes},
		{"ppt/presentation.xml", presentation},
		{"ppt/slideLayouts/slideLayout1.xml", layout},
	}
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, strconv.Itoa(i))
	}
	// "1" < "10" < "11" < "2"
	slices.Sort(names)
	for _, name := range names {
		i, _ := strconv.Atoi(name)
		parts = append(parts,
			part{"ppt/slides/slide" + name + ".xml", slideXML(i)},
			part{"ppt/slides/_rels/slide" + name + ".xml.rels", `<Relationships/>`},
		)
	}
	return parts
}

func pack(t *testing.T, parts []part) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, p := range parts {
		fw, err := w.Create(p.name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", p.name, err)
		}
		if _, err := io.WriteString(fw, p.content); err != nil {
			t.Fatalf("Failed to write %s: %v", p.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// unpack returns entry names in archive order and their content.
func unpack(t *testing.T, data []byte) ([]string, map[string]string) {
	t.Helper()

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	names := make([]string, 0, len(r.File))
	content := make(map[string]string, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Open(%s) error = %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("ReadAll(%s) error = %v", f.Name, err)
		}
		names = append(names, f.Name)
		content[f.Name] = string(b)
	}
	return names, content
}
