// Package errs defines the error taxonomy shared by all services. Callers
// branch on the kind, never on message text: validation and authorization
// failures are final, transient failures are retryable, and transition
// conflicts invite a re-read of current state.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping and retry decisions
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindNotFound
	KindInvalidTransition
	KindTransient
)

// Error is a classified application error
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap exposes the wrapped cause
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates a classified error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Validation creates a validation error (malformed input, never retried)
func Validation(msg string) error { return New(KindValidation, msg) }

// Validationf creates a formatted validation error
func Validationf(format string, args ...interface{}) error {
	return Newf(KindValidation, format, args...)
}

// Authorization creates an authorization error (actor lacks rights)
func Authorization(msg string) error { return New(KindAuthorization, msg) }

// Authorizationf creates a formatted authorization error
func Authorizationf(format string, args ...interface{}) error {
	return Newf(KindAuthorization, format, args...)
}

// NotFound creates a not-found error
func NotFound(msg string) error { return New(KindNotFound, msg) }

// NotFoundf creates a formatted not-found error
func NotFoundf(format string, args ...interface{}) error {
	return Newf(KindNotFound, format, args...)
}

// InvalidTransition creates a state-machine violation error
func InvalidTransition(msg string) error { return New(KindInvalidTransition, msg) }

// InvalidTransitionf creates a formatted state-machine violation error
func InvalidTransitionf(format string, args ...interface{}) error {
	return Newf(KindInvalidTransition, format, args...)
}

// Transient wraps a backing-store failure that is safe to retry with backoff
func Transient(msg string, err error) error { return Wrap(KindTransient, msg, err) }

// KindOf returns the kind of a classified error, or 0 for unclassified ones
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is* helpers for the common branches

func IsValidation(err error) bool        { return KindOf(err) == KindValidation }
func IsAuthorization(err error) bool     { return KindOf(err) == KindAuthorization }
func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsInvalidTransition(err error) bool { return KindOf(err) == KindInvalidTransition }
func IsTransient(err error) bool         { return KindOf(err) == KindTransient }

// HTTPStatus maps an error to its HTTP response status. Unclassified errors
// are treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidTransition:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode maps an error to the CLI harness exit code: 1 for caller errors,
// 2 for transient store errors, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindValidation, KindAuthorization, KindNotFound, KindInvalidTransition:
		return 1
	default:
		return 2
	}
}
