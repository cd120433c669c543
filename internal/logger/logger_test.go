package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{
			name:  "with debug level",
			level: zapcore.DebugLevel,
		},
		{
			name:  "with info level",
			level: zapcore.InfoLevel,
		},
		{
			name:  "with error level",
			level: zapcore.ErrorLevel,
		},
		{
			name:  "with nil level",
			level: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := New(tt.level)
			assert.NotNil(t, logger)
		})
	}
}

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{
			name:     "debug level",
			input:    "debug",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "info level",
			input:    "info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "warn level",
			input:    "warn",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "error level",
			input:    "error",
			expected: zapcore.ErrorLevel,
			valid:    true,
		},
		{
			name:     "uppercase debug",
			input:    "DEBUG",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "mixed case info",
			input:    "Info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "with spaces",
			input:    " debug ",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "invalid level",
			input:    "invalid",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, ok := ParseLogLevel(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestSetLevel tests that SetLevel switches the shared logger level.
func TestSetLevel(t *testing.T) { //nolint:paralleltest // Mutates the shared logger level.
	SetLevel(zapcore.DebugLevel)
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.InfoLevel)
	assert.False(t, IsDebugLevel())
}

// TestContextHelpers ensures the context-aware helpers do not panic.
func TestContextHelpers(t *testing.T) { //nolint:paralleltest // Uses the shared logger.
	ctx := context.Background()

	Debug(ctx, "debug message")
	Debugf(ctx, "debug %s", "message")
	Info(ctx, "info message")
	Infof(ctx, "info %s", "message")
	Warnf(ctx, "warn %s", "message")
	Error(ctx, "error message")
	Errorf(ctx, "error %s", "message")
}
