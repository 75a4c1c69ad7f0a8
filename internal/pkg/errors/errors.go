package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidation            = errors.New("validation failed")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrBackendUnavailable    = errors.New("backend unavailable")
	ErrInternalServerError   = errors.New("internal server error")

	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidUserSession = errors.New("invalid user session")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role is not allowed to use the dashboard")
	ErrQueueUnavailable   = errors.New("message queue unavailable")
)

// APIError is a non-2xx answer from the backend API.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Unwrap lets errors.Is match an APIError against the sentinel of its status class.
func (e *APIError) Unwrap() error {
	return Classify(e.Status)
}

// Classify maps a backend HTTP status onto a sentinel error.
func Classify(status int) error {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrValidation
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrBackendUnavailable
	default:
		return ErrInternalServerError
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// FieldErrors carries per-field messages of a locally rejected form.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", ErrValidation, len(f))
}

func (f FieldErrors) Unwrap() error { return ErrValidation }
