// Package errors provides standardized, classified errors for the analysis
// pipeline. Classification matters more than propagation here: the public
// analysis operation never fails, but every fallback is logged and counted
// by reason.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// AI path failures. All of them route to the deterministic fallback.
	ErrCodeAICredentialMissing ErrorCode = "AI_CREDENTIAL_MISSING"
	ErrCodeAIRateLimited       ErrorCode = "AI_RATE_LIMITED"
	ErrCodeAITimeout           ErrorCode = "AI_TIMEOUT"
	ErrCodeAIRequestFailed     ErrorCode = "AI_REQUEST_FAILED"
	ErrCodeAIResponseInvalid   ErrorCode = "AI_RESPONSE_INVALID"

	// Input / configuration problems.
	ErrCodeParseFailed    ErrorCode = "PARSE_ERROR"
	ErrCodeCatalogInvalid ErrorCode = "CATALOG_INVALID"
	ErrCodeCacheFailed    ErrorCode = "CACHE_FAILED"
)

// StandardError is a structured application error carrying a classification
// code and a retryability hint.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Retryable: retryable(code),
		Timestamp: time.Now(),
	}
}

// Wrap attaches a classification code to an underlying error.
func Wrap(code ErrorCode, err error) *StandardError {
	if err == nil {
		return nil
	}
	return &StandardError{
		Code:      code,
		Message:   err.Error(),
		Retryable: retryable(code),
		Timestamp: time.Now(),
		cause:     err,
	}
}

func retryable(code ErrorCode) bool {
	switch code {
	case ErrCodeAITimeout, ErrCodeAIRequestFailed, ErrCodeAIRateLimited, ErrCodeCacheFailed:
		return true
	default:
		return false
	}
}

// CodeOf extracts the classification code from an error chain. Unclassified
// errors report AI_REQUEST_FAILED, the catch-all fallback reason.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeAIRequestFailed
}
