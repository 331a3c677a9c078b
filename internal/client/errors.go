package client

import "errors"

// ErrSubmissionPending means a submission is in flight and overlapping
// submissions are not allowed. Submit then sends nothing and returns the
// current Pending outcome.
var ErrSubmissionPending = errors.New("a submission is already in progress")

// Error is a failed request whose text is meant to be shown to the user as-is.
type Error struct {
	// Status is the HTTP status of the response, or 0 when none arrived.
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
