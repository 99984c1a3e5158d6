// Package commands holds the methods bound to the front-end. Every exported
// method on Commands becomes callable from JavaScript by name.
package commands

import (
	"time"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/infrastructure/logging"
	"devtoolsx/internal/tools/timestamp"
)

// Result is what text-transform commands hand back to the UI. Exactly one of
// Output and Error is meaningful; Error is already phrased for display.
type Result struct {
	Output string `json:"output"`
	Error  string `json:"error"`
}

// Commands is stateless apart from its collaborators, so concurrent calls are safe
type Commands struct {
	logger    logging.Logger
	converter *timestamp.Converter
	now       func() time.Time
}

// Option configures Commands
type Option func(*Commands)

// WithClock overrides the wall clock used by the timestamp commands
func WithClock(now func() time.Time) Option {
	return func(c *Commands) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation overrides the zone used for local time rendering
func WithLocation(loc *time.Location) Option {
	return func(c *Commands) {
		c.converter = timestamp.NewConverter(loc)
	}
}

// New creates the bound command set
func New(logger logging.Logger, opts ...Option) *Commands {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	c := &Commands{
		logger:    logger,
		converter: timestamp.NewConverter(nil),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Greet returns the scaffold greeting for name
func (c *Commands) Greet(name string) string {
	return "Hello, " + name + "! You've been greeted from Rust!"
}

// reject logs input a command could not process
func (c *Commands) reject(op string, err error) {
	c.logger.Warn("Command rejected input",
		"operation", op,
		"error_code", apperrors.ClassifyError(err).String(),
		"error", err.Error(),
	)
}

func (c *Commands) fail(op string, err error, display string) Result {
	c.reject(op, err)
	return Result{Error: display}
}

func (c *Commands) traced(op string, start time.Time, size int) {
	logging.LogCommandOperation(c.logger, op, time.Since(start), map[string]interface{}{
		"input_bytes": size,
	})
}
