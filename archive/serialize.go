package archive

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// SerializeOptions controls how package is packed back.
type SerializeOptions struct {
	// Method is zip.Store or zip.Deflate.
	Method uint16
	// Level is deflate compression level (1-9), ignored for zip.Store.
	Level int
	// KeepRaw copies entries which were not modified in their original
	// compressed form instead of recompressing them.
	KeepRaw bool
}

// DefaultSerializeOptions matches what presentation generators normally use.
var DefaultSerializeOptions = SerializeOptions{Method: zip.Deflate, Level: 6}

const (
	extraZip64     = 0x0001
	extraTimestamp = 0x5455
)

// Serialize produces new zip container with every entry of the package in the
// original order. Entry names, times, comments, attributes and extra fields
// are preserved.
func (p *Package) Serialize(opts SerializeOptions) ([]byte, error) {
	switch opts.Method {
	case zip.Store:
	case zip.Deflate:
		if opts.Level < flate.BestSpeed || opts.Level > flate.BestCompression {
			return nil, &SerializationError{Err: fmt.Errorf("unsupported compression level %d", opts.Level)}
		}
	default:
		return nil, &SerializationError{Err: fmt.Errorf("unsupported compression method %d", opts.Method)}
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, opts.Level)
	})

	for _, e := range p.entries {
		if opts.KeepRaw && !e.modified && e.file != nil {
			if err := zw.Copy(e.file); err != nil {
				return nil, &SerializationError{Entry: e.header.Name, Err: err}
			}
			continue
		}
		if err := writeEntry(zw, e, opts.Method); err != nil {
			return nil, &SerializationError{Entry: e.header.Name, Err: err}
		}
	}

	if len(p.comment) > 0 {
		if err := zw.SetComment(p.comment); err != nil {
			return nil, &SerializationError{Err: err}
		}
	}
	// make sure central directory is written before giving buffer away
	if err := zw.Close(); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, e *entry, method uint16) error {
	fh := &zip.FileHeader{
		Name:           e.header.Name,
		Comment:        e.header.Comment,
		NonUTF8:        e.header.NonUTF8,
		CreatorVersion: e.header.CreatorVersion,
		Modified:       e.header.Modified,
		ExternalAttrs:  e.header.ExternalAttrs,
		Extra:          cleanExtra(e.header.Extra),
		Method:         method,
	}
	// stored entries (already compressed media, directories) stay stored
	if isDir(fh.Name) || e.header.Method == zip.Store {
		fh.Method = zip.Store
	}

	w, err := zw.CreateHeader(fh)
	if err != nil {
		return err
	}
	if len(e.data) == 0 {
		return nil
	}
	_, err = w.Write(e.data)
	return err
}

// cleanExtra drops extra field blocks writer is going to produce itself
// (zip64 sizes and extended timestamp), keeping everything else intact.
// Malformed extra is dropped completely.
func cleanExtra(extra []byte) []byte {
	var out []byte
	for rest := extra; len(rest) > 0; {
		if len(rest) < 4 {
			return nil
		}
		id := binary.LittleEndian.Uint16(rest[0:2])
		size := int(binary.LittleEndian.Uint16(rest[2:4]))
		if len(rest) < 4+size {
			return nil
		}
		if id != extraZip64 && id != extraTimestamp {
			out = append(out, rest[:4+size]...)
		}
		rest = rest[4+size:]
	}
	return out
}
