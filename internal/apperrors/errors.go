package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid principal could be established for the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated principal lacks the membership or role
// required for the attempted action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInviteCode indicates a supplied invite code does not match the
// workspace's current code.
var ErrInvalidInviteCode = errors.New("invalid invite code")

// ErrAlreadyMember indicates the principal already holds a membership in the
// target workspace.
var ErrAlreadyMember = errors.New("already a member of this workspace")

// ErrRefreshTokenExpired indicates a stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP-style status code alongside a message and an
// optional wrapped cause. Store and identity-provider failures surface as
// 500-class AppErrors; callers decide on retry policy.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 AppError that matches ErrDuplicate via errors.Is.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates a 400 AppError that matches ErrValidation via errors.Is.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}
