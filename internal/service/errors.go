package service

import "errors"

// Failure taxonomy shared by all services. Callers match with errors.Is; the
// HTTP layer translates each to a status code.
var (
	// ErrValidation marks malformed input (short username, empty content).
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation (duplicate username, a second
	// entry on the same day).
	ErrConflict = errors.New("already exists")
	// ErrAuthentication marks bad credentials or a missing session.
	ErrAuthentication = errors.New("authentication required")
	// ErrAuthorization marks an authenticated caller acting on a resource it
	// does not own.
	ErrAuthorization = errors.New("not allowed")
	// ErrNotFound marks a reference to an absent entity.
	ErrNotFound = errors.New("not found")
)
