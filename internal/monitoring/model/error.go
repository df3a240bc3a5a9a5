package model

// ===== error response structures =====

// ErrorResponse is the uniform JSON error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code plus an optional offending
// field name for validation failures.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error codes.
const (
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeNotFound     = "NOT_FOUND" // reserved, no endpoint uses it yet
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

// NewError builds the envelope for an error code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// NewFieldError builds a validation envelope pointing at a specific field.
func NewFieldError(field, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: ErrorCodeValidation, Message: message, Field: field}}
}
