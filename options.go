package dfprop

import (
	"github.com/0xalexb/hjarta-dfprop/fixedcond"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules     []fx.Option
	LogLevel    string
	LogFormat   string
	Directory   string
	Environment string
	Document    string
	AliasMarks  fixedcond.AliasMarks
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDirectory sets the directory holding the property documents and
// enables the properties module. Without it no properties are resolved.
func WithDirectory(dir string) Option {
	return func(opts *Options) {
		opts.Directory = dir
	}
}

// WithEnvironment selects an environment subdirectory whose documents
// replace the base documents of the same name.
func WithEnvironment(env string) Option {
	return func(opts *Options) {
		opts.Environment = env
	}
}

// WithDocument reads every group from the single named document, keyed by
// group name. By default each group has its own document.
func WithDocument(name string) Option {
	return func(opts *Options) {
		opts.Document = name
	}
}

// WithAliasMarks sets the alias marks substituted into fixed conditions.
func WithAliasMarks(marks fixedcond.AliasMarks) Option {
	return func(opts *Options) {
		opts.AliasMarks = marks
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
