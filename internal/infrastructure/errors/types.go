package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies command and bootstrap failures
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeValidation
	ErrCodeDecode
	ErrCodeNotReady
	ErrCodeStartup
	ErrCodePlugin
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeDecode:
		return "DECODE"
	case ErrCodeNotReady:
		return "NOT_READY"
	case ErrCodeStartup:
		return "STARTUP"
	case ErrCodePlugin:
		return "PLUGIN"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned by bound commands, plugins and the bootstrap
type CommandError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *CommandError) Error() string {
	if e == nil {
		return "command error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "command error" + contextStr
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *CommandError by code, otherwise defers to the wrapped error
func (e *CommandError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*CommandError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *CommandError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *CommandError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *CommandError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been shared between goroutines.
func (e *CommandError) WithContext(key, value string) *CommandError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewCommandError creates a new command error
func NewCommandError(op string, err error, code ErrorCode) *CommandError {
	return &CommandError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewCommandErrorWithContext creates a new command error with a copy of context
func NewCommandErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *CommandError {
	cmdErr := NewCommandError(op, err, code)
	if context != nil {
		cmdErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			cmdErr.Context[k] = v
		}
	}
	return cmdErr
}

// CodeOf returns the code of the first CommandError in err's chain
func CodeOf(err error) ErrorCode {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ErrCodeUnknown
}

func hasCode(err error, code ErrorCode) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == code
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsDecode checks if the error is a decoding error
func IsDecode(err error) bool {
	return hasCode(err, ErrCodeDecode)
}

// IsNotReady checks if the error was raised before the runtime started
func IsNotReady(err error) bool {
	return hasCode(err, ErrCodeNotReady)
}

// IsStartup checks if the error is a bootstrap error
func IsStartup(err error) bool {
	return hasCode(err, ErrCodeStartup)
}

// IsPlugin checks if the error is a plugin registration error
func IsPlugin(err error) bool {
	return hasCode(err, ErrCodePlugin)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return hasCode(err, ErrCodeInternal)
}
