package errors

import "fmt"

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Validation errors
	ErrValidation   ErrorCode = "VALIDATION_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Resource errors
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrMissingRelation ErrorCode = "MISSING_RELATION"

	// Internal errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured error
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new APIError
func New(code ErrorCode, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds details to an error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// Common error constructors
func NotFound(resource string) *APIError {
	return New(ErrNotFound, fmt.Sprintf("%s not found", resource))
}

func Validation(message string) *APIError {
	return New(ErrValidation, message)
}

func InvalidInput(message string) *APIError {
	return New(ErrInvalidInput, message)
}

func MissingRelation(message string) *APIError {
	return New(ErrMissingRelation, message)
}

func Internal(message string) *APIError {
	return New(ErrInternal, message)
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err,
	}
}
