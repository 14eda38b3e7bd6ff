package dfprop

import (
	"github.com/0xalexb/hjarta-dfprop/config"
	filefetcher "github.com/0xalexb/hjarta-dfprop/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-dfprop/config/parser/yaml"
	"github.com/0xalexb/hjarta-dfprop/groups"

	"go.uber.org/fx"
)

// NewModule returns the Fx module resolving *groups.Properties from the YAML
// documents under options.Directory.
//
// The module provides config.Parser, config.DataFetcher, config.Source and
// *groups.Properties. Build runs once, when the value is first requested.
func NewModule(options Options) fx.Option {
	return fx.Module("dfprop",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(options.Directory, options.Environment),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(options.Document)),
		fx.Supply(groups.Collaborators{AliasMarks: options.AliasMarks, Languages: nil}),
		fx.Provide(groups.Build),
	)
}
