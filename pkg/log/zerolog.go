package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger on top of a zerolog.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger in the Logger interface.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.logger.Debug(), msg, fields)
}

func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.logger.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.logger.Warn(), msg, fields)
}

func (z *zerologLogger) Error(msg string, fields ...any) {
	z.emit(z.logger.Error(), msg, fields)
}

func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

// emit attaches the variadic key-value fields to the event. Error values and
// types implementing zerolog.LogObjectMarshaler are rendered structurally.
func (z *zerologLogger) emit(event *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			if obj, ok := v.(zerolog.LogObjectMarshaler); ok {
				event = event.Object(key, obj)
			} else {
				event = event.AnErr(key, v)
			}
		case zerolog.LogObjectMarshaler:
			event = event.Object(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ===========================================================================
//
//	Default logger provider
//
// ===========================================================================

var (
	providerMu    sync.RWMutex
	defaultOutput io.Writer = os.Stderr
	defaultLevel            = LevelInfo
	defaultLogger Logger
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	providerMu.RLock()
	logger := defaultLogger
	providerMu.RUnlock()
	if logger != nil {
		return logger
	}

	providerMu.Lock()
	defer providerMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = newDefaultLogger()
	}
	return defaultLogger
}

// GetLoggerWithName returns a logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLevel sets the minimum level for the default logger.
func SetLevel(level Level) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultLevel = level
	defaultLogger = nil // rebuilt lazily with the new level
}

// SetOutput redirects the default logger output. Useful in tests.
func SetOutput(w io.Writer) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultOutput = w
	defaultLogger = nil
}

func newDefaultLogger() Logger {
	zl := zerolog.New(defaultOutput).
		Level(toZerologLevel(defaultLevel)).
		With().
		Timestamp().
		Logger()
	return &zerologLogger{logger: zl}
}
