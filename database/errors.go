package database

import "errors"

// ErrNotInitialized is returned when a statement is issued before Migrate
// has completed or after Close.
var ErrNotInitialized = errors.New("database not initialized")

// DatabaseError wraps a driver failure. Its message is the driver's own.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
