package storage

import "github.com/pkg/errors"

// ErrInvalidFormat is returned when stored value bytes cannot be parsed as
// the expected record layout: the buffer is shorter than the layout's fixed
// suffix, the type byte is out of range, or a fixed-width field cannot be
// read at its expected offset.
//
// Detect it with errors.Is. Parse constructors never panic on corrupted
// input; in-place setters, by contrast, assume a previously-validated buffer.
var ErrInvalidFormat = errors.New("storage: invalid value format")

// invalidFormatf wraps ErrInvalidFormat with a contextual message.
func invalidFormatf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidFormat, format, args...)
}
