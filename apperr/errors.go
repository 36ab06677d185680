// Package apperr holds the error taxonomy shared by repositories, services and
// HTTP handlers.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a lookup or an update by id matches no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken covers malformed, tampered and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials is returned by login when the username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a missing or invalid required field. Message is safe
// to return to the client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError carries a client facing message and matches ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound builds a NotFoundError.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// StoreError wraps any failure reported by the relational store. Its detail
// is for server logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError. A nil err stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// StatusCode maps an error to the HTTP status the API answers with.
func StatusCode(err error) int {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that may be shown to the client. Store and
// unknown errors collapse to a generic message.
func PublicMessage(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &notFoundErr):
		return notFoundErr.Message
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrInvalidToken):
		return "Invalid or expired token"
	default:
		return "Database error"
	}
}
