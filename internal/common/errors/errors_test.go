package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardError_Codes(t *testing.T) {
	cause := stderrors.New("connection refused")

	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{name: "store unavailable", err: NewStoreUnavailableError(cause), code: ErrCodeStoreUnavailable, retryable: true},
		{name: "query execution", err: NewQueryExecutionError(cause), code: ErrCodeQueryExecutionFailed, retryable: true},
		{name: "invalid input", err: NewInvalidInputError("nil input"), code: ErrCodeInvalidInput, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetErrorCode(tt.err))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("search failed: %w", NewStoreUnavailableError(cause))

	assert.Equal(t, ErrCodeStoreUnavailable, GetErrorCode(wrapped))
	assert.True(t, IsRetryable(wrapped))
	require.ErrorIs(t, wrapped, cause)
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetErrorCode(stderrors.New("plain")))
	assert.False(t, IsRetryable(stderrors.New("plain")))
}
