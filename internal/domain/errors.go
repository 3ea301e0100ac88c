package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure. Codes are stable and
// machine-readable; they cross the tool-invocation boundary unchanged.
type ErrorCode string

const (
	ErrNetworkNotSupported ErrorCode = "NetworkNotSupported"
	ErrNetwork             ErrorCode = "NetworkError"
	ErrInsufficientBalance ErrorCode = "InsufficientBalance"
	ErrArtifactsNotFound   ErrorCode = "ArtifactsNotFound"
	ErrValidation          ErrorCode = "ValidationError"
	ErrUnauthorizedSigner  ErrorCode = "UnauthorizedSigner"
	ErrDuplicateSignature  ErrorCode = "DuplicateSignature"
	ErrInvalidSignature    ErrorCode = "InvalidSignature"
	ErrSimulationFailed    ErrorCode = "SimulationFailed"
	ErrAlreadyExecuted     ErrorCode = "AlreadyExecuted"
	ErrConfirmationTimeout ErrorCode = "ConfirmationTimeout"
	ErrNotFound            ErrorCode = "NotFound"
)

// Error is the common error shape for user-visible failures. Details must
// never contain sensitive material such as private keys.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes two domain errors comparable by code via errors.Is.
func (e *Error) Is(target error) bool {
	var de *Error
	if errors.As(target, &de) {
		return de.Code == e.Code
	}
	return false
}

// WithDetail attaches a key/value pair to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewError creates a domain error with the given code.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a domain error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError wraps an underlying error under a domain code.
func WrapError(code ErrorCode, err error, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// CodeOf extracts the domain code from an error chain. Errors outside the
// taxonomy map to NetworkError only when unknown failure classes leak out
// of adapters; everything else is a programming bug and reports as-is.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err carries the given domain code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
