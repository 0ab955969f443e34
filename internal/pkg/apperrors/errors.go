package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateValue = errors.New("duplicate value")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store errors
	ErrSchemaColumnMissing = errors.New("schema column missing")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// User-facing messages for duplicate values.
const (
	MsgUsernameTaken = "Username already exists. Please choose a different username"
	MsgEmailTaken    = "Email already exists. Please choose a different email"
)

// NewNotFoundError creates a new custom error for a missing entity with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewDuplicateValueError creates a new custom error for a username/email collision.
// field names the colliding column.
func NewDuplicateValueError(field, message string) error {
	return &CustomError{
		Err:     ErrDuplicateValue,
		Message: message,
		Code:    field,
	}
}

// NewValidationError creates a new custom error for a failed form check
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// UserMessage returns the message that may be shown to the user for err, or
// fallback when err carries internals only.
func UserMessage(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" && Is(ce.Err, ErrValidationFailed, ErrDuplicateValue, ErrNotFound) {
		return ce.Message
	}
	return fallback
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
