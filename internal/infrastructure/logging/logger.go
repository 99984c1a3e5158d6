package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the structured logger shared by commands, plugins and the bootstrap
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// DefaultLogger writes one JSON object per entry through zerolog
type DefaultLogger struct {
	logger zerolog.Logger
}

// NewDefaultLogger creates a logger writing to stderr at info level
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, "info")
}

// NewLogger creates a logger writing to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return &DefaultLogger{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// fieldsToMap converts the variadic fields slice to a map
// Expected format: key1, value1, key2, value2, ...
func fieldsToMap(fields []interface{}) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			if key, ok := fields[i].(string); ok {
				result[key] = fields[i+1]
			} else {
				result[fmt.Sprintf("field_%d", i/2)] = fields[i]
				result[fmt.Sprintf("field_%d_value", i/2)] = fields[i+1]
			}
		} else {
			// Odd number of fields, keep the dangling one under an index key
			result[fmt.Sprintf("field_%d", i/2)] = fields[i]
		}
	}

	return result
}

func (l *DefaultLogger) write(event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		// level disabled
		return
	}
	event.Interface("fields", fieldsToMap(fields)).Msg(msg)
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.write(l.logger.Debug(), msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.write(l.logger.Info(), msg, fields)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.write(l.logger.Warn(), msg, fields)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.write(l.logger.Error(), msg, fields)
}

// CommandError is the subset of errors.CommandError the logger needs (avoids an import cycle)
type CommandError interface {
	Error() string
	GetCode() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogCommandError logs a failed command with its classification and context
func LogCommandError(logger Logger, err error, operation string, context map[string]interface{}) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	var cmdErr CommandError
	if errors.As(err, &cmdErr) {
		fields := []interface{}{
			"operation", operation,
			"error_code", cmdErr.GetCode(),
			"timestamp", cmdErr.GetTimestamp(),
		}

		for k, v := range cmdErr.GetContext() {
			fields = append(fields, k, v)
		}
		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Command error: %s", err.Error()), fields...)
		return
	}

	fields := []interface{}{
		"operation", operation,
		"error_type", fmt.Sprintf("%T", err),
	}
	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Error(fmt.Sprintf("Unexpected error: %s", err.Error()), fields...)
}

// LogCommandOperation logs a completed command for tracing
func LogCommandOperation(logger Logger, operation string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}
	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Debug(fmt.Sprintf("Command completed: %s", operation), fields...)
}
