package core

import "fmt"

// StatusError reports an identity/status pairing or state transition that
// the lifecycle model forbids, such as marking a remote checkout outdated.
type StatusError struct {
	// Status is the offending status value.
	Status string

	// Reason explains which rule was violated.
	Reason string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid status %q: %s", e.Status, e.Reason)
}
