package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestWalk(t *testing.T) {
	p := mustLoad(t, buildZip(t, []testFile{
		{"docs/readme.txt", "readme content"},
		{"docs/guide.txt", "guide content"},
		{"src/main.go", "main content"},
		{"src/test.go", "test content"},
		{"config.yml", "config content"},
	}))

	t.Run("walk with docs prefix", func(t *testing.T) {
		var visited []string
		err := p.Walk("docs/", func(name string) error {
			visited = append(visited, name)
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if len(visited) != 2 {
			t.Fatalf("visited %d files, want 2", len(visited))
		}
		// archive order is kept
		if visited[0] != "docs/readme.txt" || visited[1] != "docs/guide.txt" {
			t.Errorf("visited = %v, want archive order", visited)
		}
	})

	t.Run("walk with no matching prefix", func(t *testing.T) {
		var visited []string
		err := p.Walk("nonexistent/", func(name string) error {
			visited = append(visited, name)
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if len(visited) != 0 {
			t.Errorf("visited %d files, want 0", len(visited))
		}
	})

	t.Run("walk with empty prefix", func(t *testing.T) {
		var visited int
		err := p.Walk("", func(name string) error {
			visited++
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if visited != 5 {
			t.Errorf("visited %d files, want 5", visited)
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		var visited int
		err := p.Walk("", func(name string) error {
			visited++
			return expectedErr
		})
		if err != expectedErr {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
		if visited != 1 {
			t.Errorf("visited %d files, want 1 (early termination)", visited)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		var visited int
		err := p.Walk("Docs/", func(name string) error {
			visited++
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if visited != 0 {
			t.Errorf("visited %d files with 'Docs/', want 0", visited)
		}
	})
}

func TestWalk_WithDirectories(t *testing.T) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	dirHeader := &zip.FileHeader{Name: "mydir/"}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	fw, err := w.Create("mydir/file.txt")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	fw.Write([]byte("content"))
	w.Close()

	p := mustLoad(t, buf.Bytes())

	var visited []string
	err = p.Walk("mydir/", func(name string) error {
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "mydir/file.txt" {
		t.Errorf("visited = %v, want [mydir/file.txt] (file only, not directory)", visited)
	}

	// directory entry is still part of the package
	if !p.Has("mydir/") {
		t.Error("directory entry was dropped")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ppt/slides/slide1.xml", true},
		{"[Content_Types].xml", true},
		{"docProps/app.xml", true},
		{"../evil.xml", false},
		{"ppt/../../evil.xml", false},
		{"/etc/passwd", false},
		{`\windows\system.ini`, false},
		{"ppt/..slides/x.xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePath(tt.name); got != tt.want {
				t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
