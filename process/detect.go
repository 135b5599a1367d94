package process

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// enough to see the first local header and a few entry names
const sniffSize = 8192

var extensions = map[string]bool{
	".pptx": true,
	".pptm": true,
	".ppsx": true,
	".potx": true,
}

// isPresentationFile checks if file looks like presentation package. Content
// is sniffed first, extension only decides for generic zip containers.
func isPresentationFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	head = head[:n]

	if filetype.Is(head, "pptx") {
		return true, nil
	}
	return filetype.IsArchive(head) && extensions[strings.ToLower(filepath.Ext(path))], nil
}
