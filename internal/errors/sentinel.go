package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates configuration or database validation failed.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates a network connectivity issue while
	// resolving or fetching a repository.
	ErrConnectivity = errors.New("connectivity error")

	// ErrNotFound indicates a package, database, or file was not found.
	ErrNotFound = errors.New("not found")
)
