// Package plugins defines the capability modules attached to the application
// builder before the run loop starts.
package plugins

import "context"

// Plugin contributes bound front-end objects and follows the host lifecycle
type Plugin interface {
	// Name identifies the plugin; it must be unique within one application
	Name() string
	// Bindings are handed to the runtime alongside the command handlers
	Bindings() []interface{}
	// Startup receives the runtime context once the window exists
	Startup(ctx context.Context) error
	// Shutdown is called when the run loop is terminating
	Shutdown(ctx context.Context)
}
