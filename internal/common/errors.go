// Package common defines constants and sentinel errors shared by the
// Freshify server and CLI. Callers should match them with errors.Is.
package common

import "errors"

var (
	// repository specific errors
	ErrNotFound            = errors.New("not found")
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")
	ErrAlreadyExists       = errors.New("already exists")
	ErrStorage             = errors.New("could not save")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrAuthorization  = errors.New("not authorized")
	ErrValidation     = errors.New("invalid argument")
	ErrRemoteService  = errors.New("could not analyze image")
	ErrCacheMiss      = errors.New("cache miss")

	// token errors
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// ValidationError describes a rejected input field. It matches ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid argument: " + e.Reason
	}
	return "invalid argument: " + e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError is a shorthand for &ValidationError{Field: field, Reason: reason}.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteServiceError wraps a failed call to the analysis or recipe service.
// It matches ErrRemoteService.
type RemoteServiceError struct {
	Service string
	Message string
	Err     error
}

func (e *RemoteServiceError) Error() string {
	msg := e.Service + " service failed"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

func (e *RemoteServiceError) Is(target error) bool {
	return target == ErrRemoteService
}
