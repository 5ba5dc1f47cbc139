package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"wezbits/internal/config"
	"wezbits/internal/logging"
)

type environment struct {
	settings config.Settings
	logger   *logging.Logger
	store    *config.Store
}

// loadEnvironment reads settings and builds the logger and config store a
// single invocation works with.
func loadEnvironment(deps commandDeps) (*environment, error) {
	settings, err := deps.LoadSettings()
	if err != nil {
		return nil, err
	}

	level, ok := logging.ParseLevel(settings.LogLevel)
	if !ok {
		level = logging.LevelWarning
	}
	logger := logging.NewLoggerWithOutput(logging.NewLogBuffer(logging.DefaultBufferSize), level, deps.Stderr).
		With(map[string]string{"run_id": uuid.NewString()})
	if !ok {
		logger.Warn("unknown log level, using warning", map[string]string{"log_level": settings.LogLevel})
	}

	return &environment{
		settings: settings,
		logger:   logger,
		store: &config.Store{
			FS:     deps.FS,
			DotDir: settings.DotDir,
			File:   settings.ConfigFile,
			Logger: logger,
		},
	}, nil
}

func reportError(errOut io.Writer, err error) {
	fmt.Fprintf(errOut, "error: %v\n", err)
	if errors.Is(err, config.ErrConfigNotFound) {
		fmt.Fprintf(errOut, "hint: run `%s config create` to write the default config\n", binaryName)
	}
}
