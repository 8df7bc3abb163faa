package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeValidation         Code = "VALIDATION"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeRateLimited        Code = "RATE_LIMITED"
	CodeInternal           Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeUnauthorized, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, cause: err}
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: details, cause: e.cause}
}

// Sentinel errors.
var (
	ErrNotAuthenticated      = &Error{Code: CodeUnauthorized, Message: "not authenticated"}
	ErrSlugExists            = &Error{Code: CodeAlreadyExists, Message: "slug already exists"}
	ErrUsernameTaken         = &Error{Code: CodeAlreadyExists, Message: "username is already taken"}
	ErrInvalidCredentials    = &Error{Code: CodeInvalidCredentials, Message: "invalid username or password"}
	ErrIncorrectPassword     = &Error{Code: CodeValidation, Message: "current password is incorrect"}
	ErrInvalidFileType       = &Error{Code: CodeValidation, Message: "file must be a jpeg, png, webp or gif image"}
	ErrFileTooLarge          = &Error{Code: CodeValidation, Message: "file is too large"}
	ErrNotFoundAfterMutation = &Error{Code: CodeNotFound, Message: "record not found after mutation"}
	ErrPostNotFound          = &Error{Code: CodeNotFound, Message: "post not found"}
	ErrCommentNotFound       = &Error{Code: CodeNotFound, Message: "comment not found"}
	ErrAttachmentNotFound    = &Error{Code: CodeNotFound, Message: "attachment not found"}
	ErrForbidden             = &Error{Code: CodeForbidden, Message: "forbidden"}
	ErrRateLimited           = &Error{Code: CodeRateLimited, Message: "too many attempts, try again later"}
	ErrAutoSignInFailed      = &Error{Code: CodeInternal, Message: "account created but automatic sign-in failed, please sign in manually"}
)

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}
