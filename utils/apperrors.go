package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError standardizes application failures across services and
// controllers. Message is safe to show to the caller; Err carries the
// underlying cause for logs only.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports bad or missing caller input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewNotFound reports a referenced entity that does not exist.
func NewNotFound(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, HTTPStatus: http.StatusNotFound}
}

// NewDuplicate reports a uniqueness violation.
func NewDuplicate(message string) *AppError {
	return &AppError{Code: "DUPLICATE", Message: message, HTTPStatus: http.StatusConflict}
}

// NewConflict reports an operation blocked by existing references,
// such as deleting a store that staff are still assigned to.
func NewConflict(message string) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, HTTPStatus: http.StatusConflict}
}

// NewLoginRequired is returned when an operation needs a session. The
// message never reveals why authorization failed.
func NewLoginRequired() *AppError {
	return &AppError{Code: "AUTHORIZATION_REQUIRED", Message: "login is required", HTTPStatus: http.StatusUnauthorized}
}

// NewAdminRequired is returned when an operation needs the admin flag.
func NewAdminRequired() *AppError {
	return &AppError{Code: "AUTHORIZATION_REQUIRED", Message: "administrator privileges are required", HTTPStatus: http.StatusForbidden}
}

// NewInvalidCredentials is the generic login failure; it does not say
// whether the ID or the password was wrong.
func NewInvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "employee ID or password is incorrect", HTTPStatus: http.StatusUnauthorized}
}

// NewPersistence wraps a datastore failure. Detail goes to logs; the
// caller sees only a generic message.
func NewPersistence(err error) *AppError {
	return &AppError{Code: "PERSISTENCE_ERROR", Message: "an internal error occurred", HTTPStatus: http.StatusInternalServerError, Err: err}
}

// AsAppError extracts an AppError from err, wrapping unknown errors as
// persistence failures so no raw error ever reaches the caller.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewPersistence(err)
}
