package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("plan")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "plan not found", err.Error())

	// Classification survives wrapping.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, IsNotFound(wrapped))
}

func TestValidation(t *testing.T) {
	err := NewValidation("price", "must be a decimal number")
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "invalid price: must be a decimal number", err.Error())
}

func TestConflict(t *testing.T) {
	err := NewConflict("owner_email", "already registered")
	assert.True(t, IsConflict(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "owner_email already registered", err.Error())
}

func TestPersistence(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistence("payment create", cause)
	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, cause)
}

func TestPlainErrorMatchesNothing(t *testing.T) {
	err := errors.New("something else")
	assert.False(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsConflict(err))
	assert.False(t, IsPersistence(err))
}
