package logging

import (
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

var _ logger.Logger = (*WailsLoggerAdapter)(nil)

// WailsLoggerAdapter forwards runtime output to a Logger. The runtime has
// already applied its level filter by the time a method is called, and a
// leading "[AssetServer]"-style tag is lifted into a component field.
type WailsLoggerAdapter struct {
	logger Logger
}

// NewWailsLoggerAdapter wraps l; nil falls back to the default logger
func NewWailsLoggerAdapter(l Logger) *WailsLoggerAdapter {
	if l == nil {
		l = NewDefaultLogger()
	}
	return &WailsLoggerAdapter{logger: l}
}

type logFunc func(msg string, fields ...interface{})

func (w *WailsLoggerAdapter) forward(log logFunc, message string, extra ...interface{}) {
	message = strings.TrimRight(message, "\r\n")
	if strings.TrimSpace(message) == "" {
		return
	}

	fields := []interface{}{"source", "wails"}
	if component, rest, ok := splitComponent(message); ok {
		fields = append(fields, "component", component)
		message = rest
	}
	log(message, append(fields, extra...)...)
}

// splitComponent separates "[Name] text" into Name and text
func splitComponent(message string) (string, string, bool) {
	if !strings.HasPrefix(message, "[") {
		return "", message, false
	}
	end := strings.IndexByte(message, ']')
	if end < 2 {
		return "", message, false
	}
	component := message[1:end]
	if strings.ContainsAny(component, " \t") {
		return "", message, false
	}
	return component, strings.TrimSpace(message[end+1:]), true
}

// Print carries unlevelled output such as the startup banner
func (w *WailsLoggerAdapter) Print(message string) {
	w.forward(w.logger.Info, message, "raw", true)
}

func (w *WailsLoggerAdapter) Trace(message string) {
	w.forward(w.logger.Debug, message, "level", "trace")
}

func (w *WailsLoggerAdapter) Debug(message string) {
	w.forward(w.logger.Debug, message)
}

func (w *WailsLoggerAdapter) Info(message string) {
	w.forward(w.logger.Info, message)
}

func (w *WailsLoggerAdapter) Warning(message string) {
	w.forward(w.logger.Warn, message)
}

func (w *WailsLoggerAdapter) Error(message string) {
	w.forward(w.logger.Error, message)
}

// Fatal records the message; the runtime exits the process itself afterwards
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.forward(w.logger.Error, message, "level", "fatal")
}
