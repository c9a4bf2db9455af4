package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("no rights")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindInvalidTransition, KindOf(InvalidTransition("no edge")))
	assert.Equal(t, KindTransient, KindOf(Transient("store down", errors.New("timeout"))))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("submit rating: %w", Validation("rating must be between 1 and 5"))
	assert.True(t, IsValidation(err))
	assert.False(t, IsTransient(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transient("mongo unreachable", cause)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{Validation("v"), http.StatusBadRequest},
		{Authorization("a"), http.StatusForbidden},
		{NotFound("n"), http.StatusNotFound},
		{InvalidTransition("i"), http.StatusConflict},
		{Transient("t", nil), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HTTPStatus(tt.err))
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(Validation("v")))
	assert.Equal(t, 1, ExitCode(Authorization("a")))
	assert.Equal(t, 1, ExitCode(NotFound("n")))
	assert.Equal(t, 1, ExitCode(InvalidTransition("i")))
	assert.Equal(t, 2, ExitCode(Transient("t", nil)))
	assert.Equal(t, 2, ExitCode(errors.New("plain")))
}
