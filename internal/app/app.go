package app

import (
	"io"
	"log/slog"

	"github.com/vk/spingridgo/internal/config"
	"github.com/vk/spingridgo/internal/suffix"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger *slog.Logger
	config *Config
	loader config.Loader
	suffix suffix.Generator
}

// Option customizes an App.
type Option func(*App)

// WithSuffixGenerator overrides the generator selected by Config.FolderSuffix.
func WithSuffixGenerator(gen suffix.Generator) Option {
	return func(a *App) {
		a.suffix = gen
	}
}

// NewApp is the constructor for the main application. Logs are written to
// logW. The loader is only used when cfg names a grid document.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		logger: logger,
		config: cfg,
		loader: loader,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
