package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status)
	assert.Equal(t, http.StatusUnauthorized, Authentication("x").Status)
	assert.Equal(t, http.StatusForbidden, Authorization("x").Status)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, http.StatusConflict, Conflict("x").Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("x", nil).Status)
}

func TestFrom(t *testing.T) {
	orig := NotFound("Vehicle not found")
	assert.Same(t, orig, From(orig, "fallback"))

	// Wrapped app errors are still found.
	wrapped := fmt.Errorf("outer: %w", orig)
	assert.Same(t, orig, From(wrapped, "fallback"))

	// Unknown errors become internal with the fallback message.
	plain := errors.New("boom")
	got := From(plain, "Something failed")
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "Something failed", got.Message)
	assert.Equal(t, plain, got.Err)
}

func TestIsInternal(t *testing.T) {
	assert.False(t, IsInternal(Validation("x")))
	assert.True(t, IsInternal(Internal("x", nil)))
	assert.True(t, IsInternal(errors.New("boom")))
}

func TestErrorAndUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := Internal("Failed", cause)
	assert.Equal(t, "db down", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	assert.Equal(t, "Missing", Validation("Missing").Error())
}
