// Package archive gives random access to the entries of a zip container held
// in memory and packs them back. It never touches disk or network.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/h2non/filetype"
)

type entry struct {
	header   zip.FileHeader
	file     *zip.File // original entry, used for raw copy
	data     []byte
	modified bool
}

// Package is an in-memory zip container: ordered set of uniquely named
// entries. Entries could be read and overwritten, but never added or removed.
// NOTE: not to be used concurrently.
type Package struct {
	entries []*entry
	index   map[string]int
	comment string
}

// Load parses data as a zip container and reads all entries into memory.
func Load(data []byte) (*Package, error) {
	if !filetype.IsArchive(data) {
		return nil, &CorruptArchiveError{Reason: "input is not a zip container"}
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptArchiveError{Reason: "unable to read central directory", Err: err}
	}

	p := &Package{
		entries: make([]*entry, 0, len(r.File)),
		index:   make(map[string]int, len(r.File)),
		comment: r.Comment,
	}

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return nil, &CorruptArchiveError{Reason: fmt.Sprintf("entry %q: unsafe path (absolute or contains path traversal)", name)}
		}
		if _, exists := p.index[name]; exists {
			return nil, &CorruptArchiveError{Reason: fmt.Sprintf("entry %q: duplicate name", name)}
		}

		e := &entry{header: f.FileHeader, file: f}
		if !isDir(name) {
			if e.data, err = readFile(f); err != nil {
				return nil, &CorruptArchiveError{Reason: fmt.Sprintf("entry %q: unable to decompress", name), Err: err}
			}
		}
		p.index[name] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p, nil
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// checksum is verified by reader when io.EOF is reached
	return io.ReadAll(rc)
}

// Entries returns names of all entries in archive order.
func (p *Package) Entries() []string {
	names := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		names = append(names, e.header.Name)
	}
	return names
}

// Has reports if entry with the name exists.
func (p *Package) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Read returns content of the entry.
func (p *Package) Read(name string) ([]byte, error) {
	i, ok := p.index[name]
	if !ok {
		return nil, &EntryNotFoundError{Path: name}
	}
	return p.entries[i].data, nil
}

// ReadText returns content of the entry as text.
func (p *Package) ReadText(name string) (string, error) {
	data, err := p.Read(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText overwrites content of the existing entry.
func (p *Package) WriteText(name, text string) error {
	i, ok := p.index[name]
	if !ok {
		return &EntryNotFoundError{Path: name}
	}
	e := p.entries[i]
	e.data = []byte(text)
	e.modified = true
	return nil
}

// Modified returns names of entries overwritten since Load in archive order.
func (p *Package) Modified() []string {
	var names []string
	for _, e := range p.entries {
		if e.modified {
			names = append(names, e.header.Name)
		}
	}
	return names
}

// Comment returns archive comment.
func (p *Package) Comment() string {
	return p.comment
}
