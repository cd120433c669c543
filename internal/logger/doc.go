// Package logger provides a structured logging solution using the Zap logging library.
// It keeps a single shared logger with an adjustable level and exposes
// context-aware helpers for formatted and key-value logging.
// The context parameter is accepted on every helper so that request-scoped
// fields can be attached later without touching call sites.
package logger
