package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaamarimError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with MaamarimError
	err := New(ErrCodeFileNotFound, "file not found: maamarim_structured.json", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, err)
	assert.Equal(t, originalErr, errors.Unwrap(err))
	assert.True(t, errors.Is(err, originalErr))
}

func TestMaamarimError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "config error",
			code:     ErrCodeConfigInvalid,
			message:  "docs_per_chunk must be positive",
			expected: "[ERR_102_CONFIG_INVALID] docs_per_chunk must be positive",
		},
		{
			name:     "file error",
			code:     ErrCodeFileNotFound,
			message:  "input.json not found",
			expected: "[ERR_201_FILE_NOT_FOUND] input.json not found",
		},
		{
			name:     "write error",
			code:     ErrCodeWriteFailed,
			message:  "cannot write chunk",
			expected: "[ERR_207_WRITE_FAILED] cannot write chunk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestMaamarimError_Is_MatchesByCode(t *testing.T) {
	// Given: two errors with same code
	err1 := New(ErrCodeFileNotFound, "file A not found", nil)
	err2 := New(ErrCodeFileNotFound, "file B not found", nil)

	// Then: they match by code
	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, New(ErrCodeFileCorrupt, "bad json", nil)))
}

func TestMaamarimError_WithDetails_AddsContext(t *testing.T) {
	err := New(ErrCodeFileNotFound, "file not found", nil).
		WithDetail("path", "/data/maamarim_structured.json").
		WithSuggestion("Run the structuring pipeline first")

	assert.Equal(t, "/data/maamarim_structured.json", err.Details["path"])
	assert.Equal(t, "Run the structuring pipeline first", err.Suggestion)
}

func TestMaamarimError_CategoryAndSeverityFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
		wantSeverity Severity
	}{
		{ErrCodeConfigInvalid, CategoryConfig, SeverityFatal},
		{ErrCodeFileNotFound, CategoryIO, SeverityFatal},
		{ErrCodeFileCorrupt, CategoryIO, SeverityFatal},
		{ErrCodeWriteFailed, CategoryIO, SeverityFatal},
		{ErrCodeInvalidInput, CategoryValidation, SeverityError},
		{ErrCodeInternal, CategoryInternal, SeverityError},
		{"BOGUS", CategoryInternal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "test message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
			assert.Equal(t, tt.wantSeverity, err.Severity)
		})
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestGetCode_FindsWrappedError(t *testing.T) {
	// Given: a MaamarimError wrapped by fmt.Errorf
	inner := New(ErrCodeFileCorrupt, "invalid JSON", nil)
	outer := fmt.Errorf("load corpus: %w", inner)

	// Then: code and fatality are still visible
	assert.Equal(t, ErrCodeFileCorrupt, GetCode(outer))
	assert.True(t, IsFatal(outer))
	assert.Equal(t, "", GetCode(errors.New("plain")))
	assert.False(t, IsFatal(errors.New("plain")))
}
