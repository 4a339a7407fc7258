package errors

import "fmt"

// ErrorCode represents a Slate error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInputNotFound  ErrorCode = "INPUT_NOT_FOUND" // 404
	ErrSuffixOverflow ErrorCode = "SUFFIX_OVERFLOW" // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// SlateError represents a structured error with code, status, and details.
type SlateError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SlateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SlateError {
	return &SlateError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing resource.
func NewNotFound(msg string) *SlateError {
	return &SlateError{
		Code:    ErrNotFound,
		Status:  404,
		Message: msg,
	}
}

// NewInputNotFound creates a 404 error for an unreadable input file.
func NewInputNotFound(path string, err error) *SlateError {
	return &SlateError{
		Code:    ErrInputNotFound,
		Status:  404,
		Message: fmt.Sprintf("could not read input file %q: %v", path, err),
		Details: map[string]any{"path": path},
	}
}

// NewSuffixOverflow creates a 422 error for a (scene, setup) pair repeated
// beyond the representable suffix range. The run aborts before any output
// is written.
func NewSuffixOverflow(sceneIndex int, letter string, occurrences int) *SlateError {
	return &SlateError{
		Code:    ErrSuffixOverflow,
		Status:  422,
		Message: fmt.Sprintf("setup %s in scene %d repeated %d times: suffix range exhausted", letter, sceneIndex, occurrences),
		Details: map[string]any{"scene": sceneIndex, "setup": letter, "occurrences": occurrences},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *SlateError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SlateError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a SlateError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SlateError); ok {
		return sErr.Code == code
	}
	return false
}
