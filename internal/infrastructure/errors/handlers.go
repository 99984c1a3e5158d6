package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ClassifyError maps an arbitrary error onto an ErrorCode
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	if code := CodeOf(err); code != ErrCodeUnknown {
		return code
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeNotReady
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrInvalid):
		return ErrCodeValidation
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "illegal base64"):
		return ErrCodeDecode
	case strings.Contains(errStr, "invalid url escape"):
		return ErrCodeDecode
	case strings.Contains(errStr, "invalid character"):
		return ErrCodeDecode
	case strings.Contains(errStr, "unexpected end of json input"):
		return ErrCodeDecode
	}

	return ErrCodeInternal
}

// WrapError wraps err as a CommandError, classifying it when it is not one already
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return err
	}
	return NewCommandError(op, err, ClassifyError(err))
}

// HandleValidationError creates a standardized validation error
func HandleValidationError(op string, field string, value string, reason string) error {
	return NewCommandErrorWithContext(op, fmt.Errorf("validation failed for %s: %s", field, reason), ErrCodeValidation, map[string]string{
		"field": field,
		"value": value,
	})
}

// HandleDecodeError creates a standardized decoding error
func HandleDecodeError(op string, format string, err error) error {
	return NewCommandErrorWithContext(op, fmt.Errorf("cannot decode %s: %w", format, err), ErrCodeDecode, map[string]string{
		"format": format,
	})
}

// HandleNotReadyError creates an error for calls made before the runtime context exists
func HandleNotReadyError(op string, component string) error {
	return NewCommandErrorWithContext(op, fmt.Errorf("%s is not started", component), ErrCodeNotReady, map[string]string{
		"component": component,
	})
}

// HandlePluginError creates a standardized plugin registration error
func HandlePluginError(op string, plugin string, details string) error {
	return NewCommandErrorWithContext(op, fmt.Errorf("plugin %q: %s", plugin, details), ErrCodePlugin, map[string]string{
		"plugin": plugin,
	})
}

// HandleStartupError wraps a failure reported by the host run loop
func HandleStartupError(op string, err error) error {
	return NewCommandError(op, err, ErrCodeStartup)
}
