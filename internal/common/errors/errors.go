// Package errors provides standardized error handling for the recommendation
// core. Input-shape problems never become errors (the normalizer fails open);
// the codes here cover the catalog store boundary and contract violations.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeStoreUnavailable     ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeQueryExecutionFailed ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeEmptyResult          ErrorCode = "EMPTY_RESULT"
	ErrCodeInvalidInput         ErrorCode = "INVALID_INPUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// NewStoreUnavailableError wraps a connectivity failure against the graph
// store. Retryable: a later request may find the store back up.
func NewStoreUnavailableError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "catalog store is unreachable",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewQueryExecutionError wraps a failure while running a catalog query.
func NewQueryExecutionError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "catalog query execution failed",
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewInvalidInputError marks a defect-level contract violation, e.g. a nil
// request handed to the pipeline. Not retryable.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "invalid recommendation input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetErrorCode extracts the ErrorCode from err, or empty if err is not a
// StandardError.
func GetErrorCode(err error) ErrorCode {
	var standard *StandardError
	if errors.As(err, &standard) {
		return standard.Code
	}
	return ""
}

// IsRetryable reports whether err represents a condition worth retrying.
func IsRetryable(err error) bool {
	var standard *StandardError
	if errors.As(err, &standard) {
		return standard.Retryable
	}
	return false
}
