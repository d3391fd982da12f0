package services

import "errors"

// Common service-level errors
var ErrReadOnlyResource = errors.New("resource does not accept new entries")

// ValidationError reports a missing mandatory field. Message is the text
// shown to the client.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
