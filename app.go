package dfprop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-dfprop/groups"
	"github.com/0xalexb/hjarta-dfprop/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var (
	errAppNotInitialized = errors.New("app not initialized")
	errNoDirectory       = errors.New("no property directory configured")
)

// App is a configured starting point for a generation run using Fx.
type App struct {
	app        *fx.App
	properties *groups.Properties
}

// NewApp creates a new instance of App with Fx configured.
// With WithDirectory the properties are resolved while the app is built;
// a resolution failure is reported by Err and Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, &app.properties)

	return app
}

func configure(options *Options, properties **groups.Properties) *fx.App {
	logger := createLogger(options.LogLevel, options.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
	}

	if options.Directory != "" {
		fxOptions = append(fxOptions, NewModule(*options), fx.Populate(properties))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level, Format: format}

	return logging.NewLogger(config, w)
}

// Load resolves the properties configured by opts without starting an app.
func Load(opts ...Option) (*groups.Properties, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Directory == "" {
		return nil, errNoDirectory
	}

	app := NewApp(opts...)

	err := app.Err()
	if err != nil {
		return nil, err
	}

	return app.Properties(), nil
}

// Properties returns the resolved properties, or nil when the app has no
// property directory or the resolution failed.
func (app *App) Properties() *groups.Properties {
	if app == nil {
		return nil
	}

	return app.properties
}

// Err returns the error raised while building the app, including property
// resolution failures.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Err()
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}

	return nil
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
