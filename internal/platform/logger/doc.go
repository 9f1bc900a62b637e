// Package logger provides structured logging setup and context propagation
// for slog loggers.
package logger
