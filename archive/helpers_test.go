package archive

import (
	"archive/zip"
	"bytes"
	"testing"
)

type testFile struct {
	name    string
	content string
}

// buildZip creates in-memory archive with files in the given order.
func buildZip(t *testing.T, files []testFile) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, f := range files {
		fw, err := w.Create(f.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", f.name, err)
		}
		if _, err := fw.Write([]byte(f.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func mustLoad(t *testing.T, data []byte) *Package {
	t.Helper()

	p, err := Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return p
}
