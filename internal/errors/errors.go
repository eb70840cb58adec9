package errors

import (
	stderrors "errors"
	"fmt"
)

// MaamarimError is the structured error type for maamarim.
// It provides rich context for error handling, logging, and user presentation.
type MaamarimError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *MaamarimError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *MaamarimError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
func (e *MaamarimError) Is(target error) bool {
	if t, ok := target.(*MaamarimError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *MaamarimError) WithDetail(key, value string) *MaamarimError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *MaamarimError) WithSuggestion(suggestion string) *MaamarimError {
	e.Suggestion = suggestion
	return e
}

// New creates a new MaamarimError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *MaamarimError {
	return &MaamarimError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a MaamarimError from an existing error.
// The error's message becomes the MaamarimError message.
func Wrap(code string, err error) *MaamarimError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *MaamarimError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *MaamarimError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *MaamarimError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
func IsFatal(err error) bool {
	var me *MaamarimError
	if stderrors.As(err, &me) {
		return me.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a MaamarimError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	var me *MaamarimError
	if stderrors.As(err, &me) {
		return me.Code
	}
	return ""
}

// asMaamarim returns the MaamarimError in err's chain, wrapping plain errors as internal.
func asMaamarim(err error) *MaamarimError {
	var me *MaamarimError
	if stderrors.As(err, &me) {
		return me
	}
	return Wrap(ErrCodeInternal, err)
}
