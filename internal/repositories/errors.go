package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found
	// (or exists but is not visible under the repository's visibility filters).
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It can be used to wrap more specific driver errors.
	ErrDatabaseError = errors.New("database error")
)
