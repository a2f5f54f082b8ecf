package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "permission error type", errType: ErrTypePermission, expected: "PERMISSION"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    &AppError{Type: ErrTypeParsing, Message: "missing required columns"},
			wantMessage: "[PARSING] missing required columns",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeStorage,
				Message: "failed to save workbook",
				Cause:   fmt.Errorf("disk full"),
			},
			wantMessage: "[STORAGE] failed to save workbook: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("cannot create report", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("write step: %w", err)
	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeParsing, Message: "bad row"}

	result := err.WithContext("row", 7).WithContext("file", "employees.csv")

	assert.Same(t, err, result)
	assert.Equal(t, 7, err.Context["row"])
	assert.Equal(t, "employees.csv", err.Context["file"])
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantMsg  string
	}{
		{name: "parsing", err: NewParsingError("bad header", cause), wantType: ErrTypeParsing, wantMsg: "bad header"},
		{name: "storage", err: NewStorageError("save failed", cause), wantType: ErrTypeStorage, wantMsg: "save failed"},
		{name: "validation", err: NewValidationError("not a file", nil), wantType: ErrTypeValidation, wantMsg: "not a file"},
		{name: "not found", err: NewNotFoundError("input file"), wantType: ErrTypeNotFound, wantMsg: "input file not found"},
		{name: "permission", err: NewPermissionError("read only", cause), wantType: ErrTypePermission, wantMsg: "read only"},
		{name: "config", err: NewConfigError("bad level", cause), wantType: ErrTypeConfig, wantMsg: "bad level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.NotNil(t, tt.err.Context)
		})
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("load: %w", NewParsingError("missing column", nil))

	assert.True(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(errors.New("plain"), ErrTypeParsing))
	assert.False(t, IsType(nil, ErrTypeParsing))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrTypeStorage, TypeOf(fmt.Errorf("write: %w", NewStorageError("disk full", nil))))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}

func TestAppError_LogValue(t *testing.T) {
	err := NewStorageError("failed to save", errors.New("disk full")).
		WithContext("path", "/tmp/out.xlsx").
		WithContext("attempt", 1)

	v := err.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	var keys []string
	values := map[string]string{}
	for _, a := range v.Group() {
		keys = append(keys, a.Key)
		values[a.Key] = a.Value.String()
	}
	assert.Equal(t, []string{"type", "message", "cause", "attempt", "path"}, keys)
	assert.Equal(t, "STORAGE", values["type"])
	assert.Equal(t, "disk full", values["cause"])
	assert.Equal(t, "/tmp/out.xlsx", values["path"])
}
