// Package opener lets the front-end open links in the system browser and
// files with their default application.
package opener

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/infrastructure/logging"
	"devtoolsx/internal/plugins"

	"github.com/pkg/browser"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

const pluginName = "opener"

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

var _ plugins.Plugin = (*Plugin)(nil)

// Plugin owns the runtime context the open calls need
type Plugin struct {
	mu  sync.RWMutex
	ctx context.Context

	openURL  func(ctx context.Context, url string)
	openFile func(path string) error
	logger   logging.Logger
	api      *API
}

// Option configures the plugin
type Option func(*Plugin)

// WithLogger sets the plugin logger
func WithLogger(l logging.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithOpeners replaces the runtime browser and OS file handlers
func WithOpeners(openURL func(ctx context.Context, url string), openFile func(path string) error) Option {
	return func(p *Plugin) {
		if openURL != nil {
			p.openURL = openURL
		}
		if openFile != nil {
			p.openFile = openFile
		}
	}
}

// Init creates the opener plugin
func Init(opts ...Option) *Plugin {
	p := &Plugin{
		openURL:  runtime.BrowserOpenURL,
		openFile: browser.OpenFile,
		logger:   logging.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.api = &API{plugin: p}
	return p
}

func (p *Plugin) Name() string {
	return pluginName
}

// Bindings exposes only the API object so lifecycle methods stay off the front-end
func (p *Plugin) Bindings() []interface{} {
	return []interface{}{p.api}
}

func (p *Plugin) Startup(ctx context.Context) error {
	if ctx == nil {
		return apperrors.HandlePluginError("startup", pluginName, "nil runtime context")
	}
	p.mu.Lock()
	p.ctx = ctx
	p.mu.Unlock()

	p.logger.Debug("Plugin started", "plugin", pluginName)
	return nil
}

func (p *Plugin) Shutdown(ctx context.Context) {
	p.mu.Lock()
	p.ctx = nil
	p.mu.Unlock()

	p.logger.Debug("Plugin stopped", "plugin", pluginName)
}

func (p *Plugin) runtimeContext(op string) (context.Context, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.ctx == nil {
		return nil, apperrors.HandleNotReadyError(op, pluginName)
	}
	return p.ctx, nil
}

// API is the object bound to the front-end
type API struct {
	plugin *Plugin
}

// OpenURL opens target in the default browser
func (a *API) OpenURL(target string) error {
	const op = "open_url"

	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return apperrors.HandleValidationError(op, "url", target, err.Error())
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return apperrors.HandleValidationError(op, "url", target, fmt.Sprintf("unsupported scheme %q", u.Scheme))
	}
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return apperrors.HandleValidationError(op, "url", target, "missing host")
	}

	ctx, err := a.plugin.runtimeContext(op)
	if err != nil {
		return err
	}

	a.plugin.openURL(ctx, u.String())
	a.plugin.logger.Info("Opened URL", "plugin", pluginName, "scheme", scheme, "host", u.Host)
	return nil
}

// OpenPath opens an existing file or directory with the OS default handler
func (a *API) OpenPath(path string) error {
	const op = "open_path"

	if strings.TrimSpace(path) == "" {
		return apperrors.HandleValidationError(op, "path", path, "path cannot be empty")
	}
	if _, err := os.Stat(path); err != nil {
		return apperrors.NewCommandErrorWithContext(op, err, apperrors.ClassifyError(err), map[string]string{
			"path": path,
		})
	}

	if _, err := a.plugin.runtimeContext(op); err != nil {
		return err
	}

	if err := a.plugin.openFile(path); err != nil {
		wrapped := apperrors.NewCommandErrorWithContext(op, err, apperrors.ErrCodeInternal, map[string]string{
			"path": path,
		})
		logging.LogCommandError(a.plugin.logger, wrapped, op, nil)
		return wrapped
	}

	a.plugin.logger.Info("Opened path", "plugin", pluginName, "path", path)
	return nil
}
