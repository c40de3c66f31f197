package identicon

import "fmt"

// MalformedDigestError is returned when a digest is too short to derive a
// color from.
type MalformedDigestError struct {
	Len int
	Min int
}

func (e *MalformedDigestError) Error() string {
	return fmt.Sprintf("identicon: digest is %d bytes, need at least %d", e.Len, e.Min)
}

// WriteError is returned when the rendered image could not be written to
// its destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("identicon: unable to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
