package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrAccountNotFound is returned when no account exists for an email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when signing up an existing email.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidCredentials is returned for a bad email/password pair.
	// Deliberately the same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAIProvider is returned when the AI provider call fails.
	ErrAIProvider = errors.New("ai provider request failed")
	// ErrAITimeout is returned when the AI provider call exceeds its deadline.
	ErrAITimeout = errors.New("ai provider request timed out")
	// ErrStorageUnavailable is returned when the document store is unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError reports the fields a profile payload is missing or that
// are malformed or inconsistent with the declared student type.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid profile fields: " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []string
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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, vErr.Error(), "VALIDATION_FAILED")
		httpErr.Fields = vErr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAccountNotFound.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrDuplicateAccount):
		return NewHTTPError(http.StatusConflict, ErrDuplicateAccount.Error(), "ACCOUNT_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAITimeout):
		return NewHTTPError(http.StatusGatewayTimeout, ErrAITimeout.Error(), "AI_TIMEOUT")
	case errors.Is(err, ErrAIProvider):
		return NewHTTPError(http.StatusBadGateway, ErrAIProvider.Error(), "AI_PROVIDER_ERROR")
	case errors.Is(err, ErrStorageUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrStorageUnavailable.Error(), "STORAGE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
