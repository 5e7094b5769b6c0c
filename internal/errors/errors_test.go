package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailError_Format(t *testing.T) {
	err := &DetailError{
		Type:     "validation failed",
		Message:  "collection contains path separators",
		Location: "~/.pack/user.yaml",
		Hint:     "pick a plain name like 'nightly'",
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: validation failed")
	assert.Contains(t, msg, "Location: ~/.pack/user.yaml")
	assert.Contains(t, msg, "collection contains path separators")
	assert.Contains(t, msg, "Hint: pick a plain name")
}

func TestDetailError_UnwrapsSentinel(t *testing.T) {
	err := NewValidationError("bad value", "", "")
	assert.ErrorIs(t, err, ErrValidation)

	err = NewNotFoundError("no such package", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := NewExitError(cause, 3)

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, 3, err.Code)
	assert.False(t, err.Printed)
	assert.ErrorIs(t, err, cause)

	var exitErr *ExitError
	require.ErrorAs(t, error(err), &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}
