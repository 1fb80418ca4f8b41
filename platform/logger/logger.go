package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *logger
	initOnce     sync.Once
	dynamicLevel zap.AtomicLevel
)

type logger struct {
	zapLogger *zap.Logger
}

// Init builds the process-wide logger. Subsequent calls are ignored.
func Init(levelStr string, asJSON bool) error {
	initOnce.Do(func() {
		dynamicLevel = zap.NewAtomicLevelAt(parseLevel(levelStr))

		encoderCfg := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encoderCfg)
		} else {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encoderCfg)
		}

		core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), dynamicLevel)
		globalLogger = &logger{
			zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
		}
	})

	return nil
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func SetLevel(levelStr string) {
	if globalLogger == nil {
		return
	}

	dynamicLevel.SetLevel(parseLevel(levelStr))
}

// L returns the global logger, falling back to a no-op one before Init.
func L() *logger {
	if globalLogger == nil {
		return &logger{zapLogger: zap.NewNop()}
	}

	return globalLogger
}

// SetNopLogger replaces the global logger with a no-op one. Used in tests.
func SetNopLogger() {
	globalLogger = &logger{zapLogger: zap.NewNop()}
}

func Sync() error {
	if globalLogger != nil {
		return globalLogger.zapLogger.Sync()
	}

	return nil
}

func With(fields ...Field) *logger {
	return L().With(fields...)
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }
func Fatal(ctx context.Context, msg string, fields ...Field) { L().Fatal(ctx, msg, fields...) }

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Fatal(msg, append(fieldsFromContext(ctx), fields...)...)
}

// fieldsFromContext attaches the active trace and span ids, if any.
func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []Field{
		String("trace_id", sc.TraceID().String()),
		String("span_id", sc.SpanID().String()),
	}
}
