package compose

import "errors"

// ErrAborted signals the user aborted composition (e.g. Ctrl+C).
var ErrAborted = errors.New("compose: aborted")
