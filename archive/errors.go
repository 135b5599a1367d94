package archive

import "fmt"

// CorruptArchiveError is returned when input cannot be parsed as a zip
// container. Whole operation cannot continue.
type CorruptArchiveError struct {
	Reason string
	Err    error
}

func (e *CorruptArchiveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt archive: %s: %v", e.Reason, e.Err)
	}
	return "corrupt archive: " + e.Reason
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.Err
}

// EntryNotFoundError is returned when requested path is not in the package.
type EntryNotFoundError struct {
	Path string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("archive entry not found: %s", e.Path)
}

// SerializationError is returned when package could not be packed back into
// a zip container. Entry is empty when failure is not specific to a single
// entry.
type SerializationError struct {
	Entry string
	Err   error
}

func (e *SerializationError) Error() string {
	if len(e.Entry) > 0 {
		return fmt.Sprintf("unable to serialize archive entry %q: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("unable to serialize archive: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
