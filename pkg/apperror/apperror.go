package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel errors double as the stable `error` tag in HTTP responses.
var (
	ErrInvalidInput = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewInvalidInput(msg string, err error) *AppError {
	return NewAppError(ErrInvalidInput, msg, "", err)
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("No %s found with ID %s", resource, identifier)
	if identifier == "" {
		msg = fmt.Sprintf("%s not found", resource)
	}
	return NewAppError(ErrNotFound, msg, resource, nil)
}

func NewConflict(resource, field, value string) *AppError {
	msg := fmt.Sprintf("A %s with %s %q already exists", resource, field, value)
	return NewAppError(ErrConflict, msg, resource, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON renders the contractual {error, message} envelope.
func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
