package archive

import (
	"bytes"

	fixzip "github.com/hidez8891/zip"
)

// StripDataDescriptors rewrites serialized archive so none of the entries use
// trailing data descriptors. Some presentation players refuse to open
// containers produced by streaming writers. Entry data is copied without
// recompression.
func StripDataDescriptors(data []byte) ([]byte, error) {
	r, err := fixzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	buf := new(bytes.Buffer)
	w := fixzip.NewWriter(buf)

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return nil, &SerializationError{Entry: file.Name, Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}
