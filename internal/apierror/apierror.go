// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

func NewWithDetails(msg, details string) *APIError {
	return &APIError{Error: msg, Details: details}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "Erro de validação", Fields: fields}
}
