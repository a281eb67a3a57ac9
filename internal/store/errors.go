package store

import "errors"

// ErrNotFound is returned when a referenced user, skill, module, or
// discussion does not exist. It is distinct from a no-op: callers that hit
// it referenced an id that was never valid.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
