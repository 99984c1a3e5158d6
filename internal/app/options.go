package app

import (
	"io/fs"

	"devtoolsx/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// options maps the config and registrations onto the runtime options
func (b *Builder) options(assets fs.FS) *options.App {
	cfg := b.cfg

	return &options.App{
		Title:            cfg.Title,
		Width:            cfg.Width,
		Height:           cfg.Height,
		MinWidth:         cfg.MinWidth,
		MinHeight:        cfg.MinHeight,
		DisableResize:    cfg.DisableResize,
		Frameless:        cfg.Frameless,
		StartHidden:      cfg.StartHidden,
		AlwaysOnTop:      cfg.AlwaysOnTop,
		BackgroundColour: &options.RGBA{R: 27, G: 27, B: 31, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:             logging.NewWailsLoggerAdapter(b.logger),
		LogLevel:           cfg.WailsLogLevel(),
		LogLevelProduction: cfg.WailsLogLevel(),
		OnStartup:          b.startup,
		OnDomReady:         b.domReady,
		OnBeforeClose:      b.beforeClose,
		OnShutdown:         b.shutdown,
		WindowStartState:   options.Normal,
		Bind:               b.bindings(),
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.IsDevelopment(),
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			ZoomFactor:           1.0,
			BackdropType:         windows.Auto,
		},
		Mac: &mac.Options{
			TitleBar:   mac.TitleBarDefault(),
			Appearance: mac.DefaultAppearance,
			About: &mac.AboutInfo{
				Title:   cfg.Title,
				Message: "Version " + cfg.Version,
			},
		},
		Linux: &linux.Options{
			ProgramName: "devtoolsx",
		},
	}
}
