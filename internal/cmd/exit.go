// Package cmd provides CLI command implementations for pack.
package cmd

import (
	goerrors "errors"

	"github.com/idrispack/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates configuration or database validation failed.
	ExitValidationError = 2

	// ExitConnectivityError indicates a repository could not be reached.
	ExitConnectivityError = 3

	// ExitNotFound indicates a package, database, or file was not found.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *errors.ExitError
	if goerrors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case goerrors.Is(err, errors.ErrValidation):
		return ExitValidationError
	case goerrors.Is(err, errors.ErrConnectivity):
		return ExitConnectivityError
	case goerrors.Is(err, errors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
