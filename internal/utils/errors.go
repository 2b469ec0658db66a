package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Custom error types for the application
var (
	ErrNotFound       = errors.New("resource not found")
	ErrBadRequest     = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation error")
)

// ValidationIssue is a single validation failure as rendered to the client.
// Location names the source and path of the failing value, for example
// ["query", "q"] or ["body", "items", "0", "price"].
type ValidationIssue struct {
	Location []string `json:"location"`
	Message  string   `json:"message"`
	Type     string   `json:"type"`
}

// String renders the issue for logs and error messages.
func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s (%s)", strings.Join(v.Location, "."), v.Message, v.Type)
}

// AppError represents an application error with additional context
type AppError struct {
	Err        error             // The underlying error
	StatusCode int               // HTTP status code
	Message    string            // User-friendly error message
	Issues     []ValidationIssue // Collected issues (for validation errors)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Issues) > 0 {
		parts := make([]string, len(e.Issues))
		for i, issue := range e.Issues {
			parts[i] = issue.String()
		}
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying the collected issues.
// All issues for a request are reported together, never just the first.
func NewValidationError(issues []ValidationIssue) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Validation failed",
		Issues:     issues,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(err error) *AppError {
	message := "An internal server error occurred"
	if err != nil {
		message = err.Error()
	}
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

// ParseError attempts to parse an arbitrary error into an AppError
func ParseError(err error) *AppError {
	// If it's already an AppError, return it
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return &AppError{
			Err:        ErrNotFound,
			StatusCode: http.StatusNotFound,
			Message:    "Not Found",
		}
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrValidation):
		return NewValidationError(nil)
	}

	// Default to internal server error
	return NewInternalServerError(err)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
