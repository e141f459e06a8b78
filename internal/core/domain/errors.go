package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrVersionNotFound  = errors.New("booking version not found")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidYear      = errors.New("invalid year")
	ErrEmptyNote        = errors.New("note content is empty")
	ErrMissingEmail     = errors.New("token has no email")
)

// PersistenceError wraps a failed store call. Its message is safe to show to
// the user; local edits are not affected.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "failed to " + e.Op + " booking: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) UserMessage() string {
	return "Could not " + e.Op + " the booking. Your changes are kept, please try again."
}
