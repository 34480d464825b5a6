package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidMediaType  = "INVALID_MEDIA_TYPE"
	CodeEmptyImageSet     = "EMPTY_IMAGE_SET"
	CodeNotFound          = "NOT_FOUND"
	CodeRemoteUnavailable = "REMOTE_UNAVAILABLE"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// InvalidMediaType rejects an upload before anything is written to the store.
func InvalidMediaType(mimeType string) *AppError {
	return &AppError{
		Code:    CodeInvalidMediaType,
		Message: fmt.Sprintf("media type %q is not an accepted image type", mimeType),
		Status:  http.StatusBadRequest,
	}
}

// EmptyImageSet guards publication: a listing needs at least one image.
func EmptyImageSet() *AppError {
	return &AppError{
		Code:    CodeEmptyImageSet,
		Message: "listing must have at least one image",
		Status:  http.StatusBadRequest,
	}
}

// RemoteUnavailable marks a store operation that could not complete.
// The core never retries these.
func RemoteUnavailable(message string, err error) *AppError {
	return &AppError{
		Code:    CodeRemoteUnavailable,
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func TooManyRequests(message string) *AppError {
	return &AppError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
