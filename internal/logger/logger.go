package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // The package maintains a single shared logger with an adjustable level.
var (
	globalLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	globalLogger = New(globalLevel)
)

// New creates a logger that writes human-readable output to stderr.
// A nil level enabler defaults to the info level.
func New(level zapcore.LevelEnabler) *zap.SugaredLogger {
	if level == nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level)

	return zap.New(core).Sugar()
}

// Logger returns the shared logger instance.
func Logger() *zap.SugaredLogger {
	return globalLogger
}

// SetLevel changes the level of the shared logger.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// ParseLogLevel parses a textual log level (case-insensitive, surrounding
// whitespace ignored). It returns the info level and false for unknown input.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// IsDebugLevel reports whether the shared logger emits debug output.
func IsDebugLevel() bool {
	return globalLevel.Enabled(zapcore.DebugLevel)
}

// Debug logs a message at debug level.
func Debug(_ context.Context, args ...any) {
	globalLogger.Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(_ context.Context, format string, args ...any) {
	globalLogger.Debugf(format, args...)
}

// Info logs a message at info level.
func Info(_ context.Context, args ...any) {
	globalLogger.Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(_ context.Context, format string, args ...any) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(_ context.Context, format string, args ...any) {
	globalLogger.Warnf(format, args...)
}

// Error logs a message at error level.
func Error(_ context.Context, args ...any) {
	globalLogger.Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(_ context.Context, format string, args ...any) {
	globalLogger.Errorf(format, args...)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(_ context.Context, format string, args ...any) {
	globalLogger.Fatalf(format, args...)
}
