package output

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
		{"ExitNoInput", ExitNoInput, 3},
		{"ExitNoContent", ExitNoContent, 4},
		{"ExitCancelled", ExitCancelled, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantMessage  string
		wantErrorStr string
	}{
		{
			name:         "user error",
			err:          NewUserError("missing required flag: --input"),
			wantCode:     ExitUserError,
			wantMessage:  "missing required flag: --input",
			wantErrorStr: "missing required flag: --input",
		},
		{
			name:         "system error",
			err:          NewSystemErrorWithCause("write index.md failed", nil),
			wantCode:     ExitSystemError,
			wantMessage:  "write index.md failed",
			wantErrorStr: "write index.md failed",
		},
		{
			name:         "no input error",
			err:          NewNoInputError("no .yml files found in ./api", nil),
			wantCode:     ExitNoInput,
			wantMessage:  "no .yml files found in ./api",
			wantErrorStr: "no .yml files found in ./api",
		},
		{
			name:         "no content error",
			err:          NewNoContentError("no types found", nil),
			wantCode:     ExitNoContent,
			wantMessage:  "no types found",
			wantErrorStr: "no types found",
		},
		{
			name:         "cancelled error",
			err:          NewCancelledError(context.Canceled),
			wantCode:     ExitCancelled,
			wantMessage:  "cancelled",
			wantErrorStr: "cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewSystemErrorWithCause("write page failed", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}

	// Test Unwrap
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	// Test that Error() includes the message
	if err.Error() != "write page failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "write page failed")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "ExitError user",
			err:      NewUserError("bad input"),
			expected: ExitUserError,
		},
		{
			name:     "ExitError system",
			err:      NewSystemErrorWithCause("read failed", nil),
			expected: ExitSystemError,
		},
		{
			name:     "ExitError no input",
			err:      NewNoInputError("empty", nil),
			expected: ExitNoInput,
		},
		{
			name:     "wrapped ExitError no content",
			err:      fmt.Errorf("generate: %w", NewNoContentError("no types", nil)),
			expected: ExitNoContent,
		},
		{
			name:     "context cancellation",
			err:      fmt.Errorf("render: %w", context.Canceled),
			expected: ExitCancelled,
		},
		{
			name:     "regular error defaults to user error",
			err:      errors.New("some error"),
			expected: ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
