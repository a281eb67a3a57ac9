package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when an operation requires a
	// logged-in user and nobody is logged in.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrDuplicateEmail is returned when signup hits an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials don't
	// match. The message deliberately doesn't say which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBusy is returned when an auth operation is already in flight.
	// Guards against double-submission; the caller should simply retry
	// after the first call settles.
	ErrBusy = errors.New("another operation is in progress")
)

// ValidationError reports a missing or malformed input field. The
// operation was aborted and no state changed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}
