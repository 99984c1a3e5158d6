package main

import (
	"embed"
	"os"

	"devtoolsx/internal/app"
	"devtoolsx/internal/commands"
	"devtoolsx/internal/config"
	"devtoolsx/internal/infrastructure/logging"
	"devtoolsx/internal/platform"
	"devtoolsx/internal/plugins/opener"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Must run before anything captures os.Stderr
	platform.AttachConsole()
	stderr := platform.StderrTarget()

	cfg, envErr := config.ConfigForEnvironment(os.Getenv("DEVTOOLSX_ENVIRONMENT"))
	logger := logging.NewLogger(stderr, cfg.LogLevel)
	if envErr != nil {
		logger.Warn("Ignoring environment overrides", "error", envErr.Error())
	}

	if path := config.DefaultFilePath(); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			logger.Warn("Ignoring config file", "path", path, "error", err.Error())
		}
	}

	builder := app.NewBuilder(cfg, logger).
		Plugin(opener.Init(opener.WithLogger(logger))).
		InvokeHandler(commands.New(logger))

	app.Main(builder, assets, stderr)
}
