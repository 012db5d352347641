// Package slogadapters bridges Go's standard log/slog package to the
// dependency-free logging interfaces of the catalog package.
package slogadapters

import (
	"context"
	"log/slog"

	"github.com/catalogkit/layered-catalog-go/catalog"
)

// SlogLogger implements catalog.Logger on top of a *slog.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger adapter around the given slog.Logger.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewSlogLoggerWithHandler creates a logger adapter from a slog.Handler.
func NewSlogLoggerWithHandler(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

var _ catalog.Logger = (*SlogLogger)(nil)

// SlogContextualLogger implements catalog.ContextualLogger on top of a
// *slog.Logger, forwarding the context so handlers with trace correlation
// can use it.
type SlogContextualLogger struct {
	logger *slog.Logger
}

// NewSlogContextualLogger creates a contextual logger adapter around the
// given slog.Logger.
func NewSlogContextualLogger(logger *slog.Logger) *SlogContextualLogger {
	return &SlogContextualLogger{logger: logger}
}

// DebugContext logs a debug message with context.
func (l *SlogContextualLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext logs an info message with context.
func (l *SlogContextualLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext logs a warning message with context.
func (l *SlogContextualLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext logs an error message with context.
func (l *SlogContextualLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ catalog.ContextualLogger = (*SlogContextualLogger)(nil)
