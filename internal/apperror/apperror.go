package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how the caller should react to it.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindConflict      Kind = "conflict"
	KindConfiguration Kind = "configuration"
	KindStorage       Kind = "storage"
)

// Error is the typed error returned across service boundaries.
// Message is safe to show to clients; Err keeps the internal cause.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, nil, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, nil, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(KindUnauthorized, nil, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, nil, format, args...)
}

func Conflict(err error, format string, args ...any) *Error {
	return newError(KindConflict, err, format, args...)
}

func Configuration(format string, args ...any) *Error {
	return newError(KindConfiguration, nil, format, args...)
}

func Storage(err error, format string, args ...any) *Error {
	return newError(KindStorage, err, format, args...)
}

// WithDetails attaches per-field messages, e.g. one per rejected answer.
func (e *Error) WithDetails(details ...string) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// Is matches on Kind so callers can write errors.Is(err, apperror.NotFound("")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HTTPStatus maps an error to the status code the API responds with.
// Unknown errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns what a client may see. Configuration and storage
// failures are server-side defects and collapse to a generic message.
func PublicMessage(err error) (string, []string) {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal server error", nil
	}
	switch e.Kind {
	case KindConfiguration, KindStorage:
		return "Internal server error", nil
	default:
		return e.Message, e.Details
	}
}
