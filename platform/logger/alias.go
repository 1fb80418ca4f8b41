package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LevelDebug = zap.DebugLevel
	LevelInfo  = zap.InfoLevel
	LevelWarn  = zap.WarnLevel
	LevelError = zap.ErrorLevel
	LevelFatal = zap.FatalLevel
)

type Field = zap.Field

var (
	String   = zap.String
	Strings  = zap.Strings
	Stringer = zap.Stringer
	Int      = zap.Int
	Int32    = zap.Int32
	Int64    = zap.Int64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
	Any      = zap.Any
	ErrorF   = zap.Error
)

// UUID logs an entity id in its canonical text form.
func UUID(key string, id uuid.UUID) Field { return zap.Stringer(key, id) }
