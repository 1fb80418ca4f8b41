package logger

import "context"

// NoopLogger satisfies the narrow logger interfaces of platform packages and drops everything.
type NoopLogger struct{}

func (l *NoopLogger) Debug(_ context.Context, _ string, _ ...Field) {}
func (l *NoopLogger) Info(_ context.Context, _ string, _ ...Field)  {}
func (l *NoopLogger) Warn(_ context.Context, _ string, _ ...Field)  {}
func (l *NoopLogger) Error(_ context.Context, _ string, _ ...Field) {}
