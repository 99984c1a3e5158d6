package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"devtoolsx/internal/config"
	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/infrastructure/logging"
	"devtoolsx/internal/plugins"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
)

const (
	// shutdownTimeout bounds the time plugins get to release resources
	shutdownTimeout = 5 * time.Second
)

// Runner hands the assembled options to the host run loop and blocks until it exits
type Runner func(*options.App) error

// Builder assembles the application. Registration mistakes are collected and
// reported by Run instead of failing at the call site.
type Builder struct {
	cfg      *config.Config
	logger   logging.Logger
	plugins  []plugins.Plugin
	handlers []interface{}
	runner   Runner
	errs     []error
	state    atomic.Int32

	mu  sync.RWMutex
	ctx context.Context
}

// NewBuilder creates a builder for a copy of cfg. A nil cfg uses DefaultConfig.
func NewBuilder(cfg *config.Config, logger logging.Logger) *Builder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg = cfg.Clone()
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	b := &Builder{
		cfg:    cfg,
		logger: logger,
		runner: wails.Run,
	}
	if err := cfg.Validate(); err != nil {
		b.errs = append(b.errs, apperrors.NewCommandError("configure", err, apperrors.ErrCodeValidation))
	}
	return b
}

// Plugin attaches a capability module. Names must be unique.
func (b *Builder) Plugin(p plugins.Plugin) *Builder {
	if p == nil {
		b.errs = append(b.errs, apperrors.HandlePluginError("register_plugin", "<nil>", "plugin is nil"))
		return b
	}
	for _, existing := range b.plugins {
		if existing.Name() == p.Name() {
			b.errs = append(b.errs, apperrors.HandlePluginError("register_plugin", p.Name(), "already registered"))
			return b
		}
	}
	b.plugins = append(b.plugins, p)
	return b
}

// InvokeHandler registers objects whose exported methods become front-end commands
func (b *Builder) InvokeHandler(handlers ...interface{}) *Builder {
	for i, h := range handlers {
		if h == nil {
			b.errs = append(b.errs, apperrors.HandleValidationError("register_handler", "handler", fmt.Sprintf("#%d", i), "handler is nil"))
			continue
		}
		if b.hasHandler(h) {
			b.errs = append(b.errs, apperrors.HandleValidationError("register_handler", "handler", fmt.Sprintf("%T", h), "already registered"))
			continue
		}
		b.handlers = append(b.handlers, h)
	}
	return b
}

func (b *Builder) hasHandler(h interface{}) bool {
	for _, existing := range b.handlers {
		if existing == h {
			return true
		}
	}
	return false
}

// WithRunner replaces the host run loop, mainly for tests
func (b *Builder) WithRunner(r Runner) *Builder {
	if r != nil {
		b.runner = r
	}
	return b
}

// State reports whether control has been handed to the run loop
func (b *Builder) State() State {
	return State(b.state.Load())
}

// Context returns the runtime context once the host has started, or nil
func (b *Builder) Context() context.Context {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ctx
}

func (b *Builder) bindings() []interface{} {
	bind := make([]interface{}, 0, len(b.handlers)+len(b.plugins))
	bind = append(bind, b.handlers...)
	for _, p := range b.plugins {
		bind = append(bind, p.Bindings()...)
	}
	return bind
}

// Run builds the options and blocks in the host run loop
func (b *Builder) Run(assets fs.FS) error {
	if len(b.errs) > 0 {
		return apperrors.HandleStartupError("build", errors.Join(b.errs...))
	}
	if len(b.handlers) == 0 {
		return apperrors.HandleStartupError("build", fmt.Errorf("no invoke handlers registered"))
	}

	opts := b.options(assets)

	b.state.Store(int32(StateRunning))
	b.logger.Info("Handing control to the run loop",
		"title", b.cfg.Title,
		"environment", b.cfg.Environment,
		"plugins", len(b.plugins),
		"bindings", len(opts.Bind),
	)

	if err := b.runner(opts); err != nil {
		return apperrors.HandleStartupError("run", err)
	}
	return nil
}

func (b *Builder) startup(ctx context.Context) {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	for _, p := range b.plugins {
		if err := p.Startup(ctx); err != nil {
			logging.LogCommandError(b.logger, err, "plugin_startup", map[string]interface{}{
				"plugin": p.Name(),
			})
		}
	}

	b.logger.Info("Application started", "environment", b.cfg.Environment)
}

func (b *Builder) domReady(ctx context.Context) {
	b.logger.Debug("Front-end loaded")
}

func (b *Builder) beforeClose(ctx context.Context) (prevent bool) {
	return false
}

func (b *Builder) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// reverse registration order
	for i := len(b.plugins) - 1; i >= 0; i-- {
		b.plugins[i].Shutdown(shutdownCtx)
	}

	b.mu.Lock()
	b.ctx = nil
	b.mu.Unlock()

	b.logger.Info("Application shutdown completed")
}
