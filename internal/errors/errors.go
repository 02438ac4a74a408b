package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a requested user or scope does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when a username is already registered.
	ErrDuplicateUsername = errors.New("this name is in use")
	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries per-field messages.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Timestamp        int64             `json:"timestamp"`
	Status           int               `json:"status"`
	Message          string            `json:"message"`
	URL              string            `json:"url"`
	Code             string            `json:"code,omitempty"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode       int
	Message          string
	Code             string
	ValidationErrors map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse for the given request path.
func (e *HTTPError) ToErrorResponse(path string) ErrorResponse {
	return ErrorResponse{
		Timestamp:        time.Now().UnixMilli(),
		Status:           e.StatusCode,
		Message:          e.Message,
		URL:              path,
		Code:             e.Code,
		ValidationErrors: e.ValidationErrors,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		httpErr := NewHTTPError(http.StatusBadRequest, "Validation error", "VALIDATION_ERROR")
		httpErr.ValidationErrors = validationErr.Fields
		return httpErr
	case errors.Is(err, ErrDuplicateUsername):
		httpErr := NewHTTPError(http.StatusBadRequest, "Validation error", "DUPLICATE_USERNAME")
		httpErr.ValidationErrors = map[string]string{"username": "This name is in use"}
		return httpErr
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Forbidden", "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
