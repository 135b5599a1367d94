package process

import (
	"path/filepath"
	"testing"
)

func TestIsPresentationFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data func(t *testing.T) []byte
		want bool
	}{
		{"deck.pptx", func(t *testing.T) []byte { return presentation(t, 2) }, true},
		{"UPPER.PPTX", func(t *testing.T) []byte { return presentation(t, 1) }, true},
		{"show.ppsx", func(t *testing.T) []byte { return presentation(t, 1) }, true},
		{"readme.zip", plainZip, false},
		{"fake.pptx", func(*testing.T) []byte { return []byte("just text") }, false},
		{"empty.pptx", func(*testing.T) []byte { return nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.name), tt.data(t))
			got, err := isPresentationFile(path)
			if err != nil {
				t.Fatalf("isPresentationFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isPresentationFile() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := isPresentationFile(filepath.Join(dir, "absent.pptx")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
