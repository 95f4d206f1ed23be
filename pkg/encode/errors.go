package encode

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for an encoder name the registry does not
// hold.
var ErrNotFound = errors.New("encoder not found")

// Error wraps encoder failures with the operation and encoder name so
// callers can tell which stage of output production broke.
type Error struct {
	Op      string
	Encoder string
	Err     error
}

func (e *Error) Error() string {
	if e.Encoder == "" {
		return fmt.Sprintf("encode: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("encode: %s %q: %v", e.Op, e.Encoder, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
